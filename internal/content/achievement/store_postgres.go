// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement

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
	return strings.Join(schema.ContentAchievement.Columns(), ", ")
}

func scanRow(scanner interface{ Scan(...any) error }, row *Row) error {
	return scanner.Scan(
		&row.ID, &row.Type, &row.Title, &row.Organization, &row.Description,
		&row.Month, &row.Year, &row.Image, &row.Link, &row.Tags,
		&row.CreatedAt, &row.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListAchievements(context context.Context) ([]Row, error) {
	t := schema.ContentAchievement
	// Year/month ordering in SQL keeps pagination-free lists cheap; the
	// service still applies the shared comparator for byte-stable output.
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		selectColumns(), t.Table, t.Year,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_achievements")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := scanRow(rows, &row); err != nil {
			return nil, dberr.Wrap(err, "scan_achievement")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_achievements")
}

func (repository *PostgresRepository) GetAchievement(context context.Context, id string) (Row, error) {
	t := schema.ContentAchievement
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), t.Table, t.ID)

	var row Row
	err := scanRow(repository.db.QueryRow(context, query, id), &row)
	return row, dberr.Wrap(err, "get_achievement")
}

func (repository *PostgresRepository) CreateAchievement(context context.Context, row *Row) error {
	t := schema.ContentAchievement
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, selectColumns(), t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Type, row.Title, row.Organization, row.Description,
		row.Month, row.Year, row.Image, row.Link, row.Tags,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "create_achievement")
}

func (repository *PostgresRepository) UpdateAchievement(context context.Context, row *Row) error {
	t := schema.ContentAchievement
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		t.Table,
		t.Type, t.Title, t.Organization, t.Description, t.Month, t.Year,
		t.Image, t.Link, t.Tags, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Type, row.Title, row.Organization, row.Description,
		row.Month, row.Year, row.Image, row.Link, row.Tags,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "update_achievement")
}

func (repository *PostgresRepository) DeleteAchievement(context context.Context, id string) error {
	t := schema.ContentAchievement
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_achievement")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
