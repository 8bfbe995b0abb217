// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package blog

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
	return strings.Join(schema.ContentBlog.Columns(), ", ")
}

func scanRow(row interface{ Scan(...any) error }, out *Row) error {
	return row.Scan(
		&out.ID, &out.Slug, &out.Title, &out.Excerpt, &out.Content,
		&out.CoverImage, &out.Author, &out.Tags, &out.Published,
		&out.Featured, &out.PublishedAt, &out.CreatedAt, &out.UpdatedAt,
	)
}

func (repository *PostgresRepository) List(context context.Context, includeUnpublished bool, tags []string) ([]Row, error) {
	t := schema.ContentBlog

	var conditions []string
	var args []any
	if !includeUnpublished {
		conditions = append(conditions, fmt.Sprintf("%s = TRUE", t.Published))
	}
	if len(tags) > 0 {
		args = append(args, tags)
		conditions = append(conditions, fmt.Sprintf("%s && $%d", t.Tags, len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), t.Table)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY COALESCE(%s, %s) DESC`, t.PublishedAt, t.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := scanRow(rows, &row); err != nil {
			return nil, dberr.Wrap(err, "scan_blog")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_blogs")
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (Row, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), t.Table, t.Slug)

	var row Row
	if err := scanRow(repository.db.QueryRow(context, query, slug), &row); err != nil {
		return Row{}, dberr.Wrap(err, "get_blog_by_slug")
	}
	return row, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (Row, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), t.Table, t.ID)

	var row Row
	if err := scanRow(repository.db.QueryRow(context, query, id), &row); err != nil {
		return Row{}, dberr.Wrap(err, "get_blog_by_id")
	}
	return row, nil
}

func (repository *PostgresRepository) Create(context context.Context, row *Row) error {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, selectColumns(), t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Slug, row.Title, row.Excerpt, row.Content,
		row.CoverImage, row.Author, row.Tags, row.Published,
		row.Featured, row.PublishedAt,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "create_blog")
}

func (repository *PostgresRepository) Update(context context.Context, row *Row) error {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11,
			%s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		t.Table,
		t.Slug, t.Title, t.Excerpt, t.Content, t.CoverImage,
		t.Author, t.Tags, t.Published, t.Featured, t.PublishedAt,
		t.UpdatedAt,
		t.ID,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Slug, row.Title, row.Excerpt, row.Content,
		row.CoverImage, row.Author, row.Tags, row.Published,
		row.Featured, row.PublishedAt,
	).Scan(&row.CreatedAt, &row.UpdatedAt)

	return dberr.Wrap(err, "update_blog")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentBlog
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
