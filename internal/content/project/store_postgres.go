// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longpd/folio/internal/platform/database/schema"
	"github.com/longpd/folio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return strings.Join(schema.ContentProject.Columns(), ", ")
}

func scanRow(scanner interface{ Scan(...any) error }, row *Row) error {
	return scanner.Scan(
		&row.ID, &row.Title, &row.Description, &row.LongDescription, &row.Event,
		&row.StartMonth, &row.StartYear, &row.EndMonth, &row.EndYear, &row.IsOngoing,
		&row.Image, &row.Images, &row.Tags, &row.Skills, &row.Categories, &row.IsFeatured,
		&row.Link, &row.GithubLink, &row.LiveLink, &row.TeamSize, &row.Role, &row.Achievements,
		&row.TestimonialQuote, &row.TestimonialAuthor, &row.TestimonialPosition,
		&row.TestimonialCompany, &row.CreatedAt, &row.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListProjects(context context.Context) ([]Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentProject.Table)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := scanRow(rows, &row); err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_projects")
}

func (repository *PostgresRepository) GetProject(context context.Context, id string) (Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentProject.Table, schema.ContentProject.ID,
	)

	var row Row
	err := scanRow(repository.db.QueryRow(context, query, id), &row)
	return row, dberr.Wrap(err, "get_project")
}

func (repository *PostgresRepository) CreateProject(context context.Context, row *Row) error {
	t := schema.ContentProject
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, selectColumns(), t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Title, row.Description, row.LongDescription, row.Event,
		row.StartMonth, row.StartYear, row.EndMonth, row.EndYear, row.IsOngoing,
		row.Image, row.Images, row.Tags, row.Skills, row.Categories, row.IsFeatured,
		row.Link, row.GithubLink, row.LiveLink, row.TeamSize, row.Role, row.Achievements,
		row.TestimonialQuote, row.TestimonialAuthor, row.TestimonialPosition, row.TestimonialCompany,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) UpdateProject(context context.Context, row *Row) error {
	t := schema.ContentProject
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = $19, %s = $20, %s = $21, %s = $22, %s = $23,
			%s = $24, %s = $25, %s = $26, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		t.Table,
		t.Title, t.Description, t.LongDescription, t.Event, t.StartMonth, t.StartYear,
		t.EndMonth, t.EndYear, t.IsOngoing, t.Image, t.Images, t.Tags, t.Skills,
		t.Categories, t.IsFeatured, t.Link, t.GithubLink, t.LiveLink, t.TeamSize,
		t.Role, t.Achievements, t.TestimonialQuote, t.TestimonialAuthor,
		t.TestimonialPosition, t.TestimonialCompany, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Title, row.Description, row.LongDescription, row.Event,
		row.StartMonth, row.StartYear, row.EndMonth, row.EndYear, row.IsOngoing,
		row.Image, row.Images, row.Tags, row.Skills, row.Categories, row.IsFeatured,
		row.Link, row.GithubLink, row.LiveLink, row.TeamSize, row.Role, row.Achievements,
		row.TestimonialQuote, row.TestimonialAuthor, row.TestimonialPosition, row.TestimonialCompany,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "update_project")
}

func (repository *PostgresRepository) DeleteProject(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentProject.Table, schema.ContentProject.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
