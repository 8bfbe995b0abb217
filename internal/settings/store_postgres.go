// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package settings

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) List(context context.Context) ([]Row, error) {
	t := schema.SystemSetting
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.Key, t.Value, t.UpdatedAt, t.Table, t.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Key, &row.Value, &row.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_settings")
}

func (repository *PostgresRepository) Get(context context.Context, key string) (Row, error) {
	t := schema.SystemSetting
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		t.Key, t.Value, t.UpdatedAt, t.Table, t.Key)

	var row Row
	if err := repository.db.QueryRow(context, query, key).Scan(&row.Key, &row.Value, &row.UpdatedAt); err != nil {
		return Row{}, dberr.Wrap(err, "get_setting")
	}
	return row, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, row *Row) error {
	t := schema.SystemSetting
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s
	`,
		t.Table, t.Key, t.Value, t.UpdatedAt,
		t.Key, t.Value, t.Value, t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, row.Key, row.Value).Scan(&row.UpdatedAt)
	return dberr.Wrap(err, "upsert_setting")
}

func (repository *PostgresRepository) Delete(context context.Context, key string) error {
	t := schema.SystemSetting
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.Key)

	cmd, err := repository.db.Exec(context, query, key)
	if err != nil {
		return dberr.Wrap(err, "delete_setting")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
