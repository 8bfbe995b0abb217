// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery

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
	return strings.Join(schema.ContentGalleryImage.Columns(), ", ")
}

func (repository *PostgresRepository) ListImages(context context.Context, collection string) ([]Row, error) {
	t := schema.ContentGalleryImage
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), t.Table)

	var args []any
	if collection != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, t.Collection)
		args = append(args, collection)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.URL, &row.Caption, &row.Collection, &row.Month, &row.Year, &row.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_image")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_gallery_images")
}

func (repository *PostgresRepository) CreateImage(context context.Context, row *Row) error {
	t := schema.ContentGalleryImage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`, t.Table, selectColumns(), t.CreatedAt)

	err := repository.db.QueryRow(context, query,
		row.ID, row.URL, row.Caption, row.Collection, row.Month, row.Year,
	).Scan(&row.CreatedAt)

	return dberr.Wrap(err, "create_gallery_image")
}

func (repository *PostgresRepository) UpdateImage(context context.Context, row *Row) error {
	t := schema.ContentGalleryImage
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.URL, t.Caption, t.Collection, t.Month, t.Year,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		row.ID, row.URL, row.Caption, row.Collection, row.Month, row.Year,
	).Scan(&row.CreatedAt)

	return dberr.Wrap(err, "update_gallery_image")
}

func (repository *PostgresRepository) DeleteImage(context context.Context, id string) error {
	t := schema.ContentGalleryImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
