// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package inbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longpd/folio/internal/platform/database/schema"
	"github.com/longpd/folio/internal/platform/dberr"
	"github.com/longpd/folio/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, unreadOnly bool) ([]Row, int, error) {
	t := schema.InboxMessage

	where := ""
	if unreadOnly {
		where = fmt.Sprintf(` WHERE %s = FALSE`, t.Read)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, t.Table, where)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_messages")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s%s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, strings.Join(t.Columns(), ", "), t.Table, where, t.CreatedAt)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_messages")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Subject, &row.Message, &row.Read, &row.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_message")
		}
		result = append(result, row)
	}

	return result, total, dberr.Wrap(rows.Err(), "list_messages")
}

func (repository *PostgresRepository) Create(context context.Context, row *Row) error {
	t := schema.InboxMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING %s
	`, t.Table, strings.Join(t.Columns(), ", "), t.CreatedAt)

	err := repository.db.QueryRow(context, query,
		row.ID, row.Name, row.Email, row.Subject, row.Message,
	).Scan(&row.CreatedAt)

	return dberr.Wrap(err, "create_message")
}

func (repository *PostgresRepository) MarkRead(context context.Context, id string) error {
	t := schema.InboxMessage
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`, t.Table, t.Read, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark_message_read")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UnreadIDs(context context.Context) ([]string, error) {
	t := schema.InboxMessage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = FALSE ORDER BY %s ASC`,
		t.ID, t.Table, t.Read, t.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_unread_ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_unread_id")
		}
		ids = append(ids, id)
	}

	return ids, dberr.Wrap(rows.Err(), "list_unread_ids")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.InboxMessage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
