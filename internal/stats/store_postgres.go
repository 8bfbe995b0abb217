// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

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

func (repository *PostgresRepository) Get(context context.Context, itemType, itemID string) (ItemStat, error) {
	t := schema.StatsItemStat
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		t.ItemType, t.ItemID, t.ViewCount, t.UpdatedAt, t.Table,
		t.ItemType, t.ItemID,
	)

	var stat ItemStat
	err := repository.db.QueryRow(context, query, itemType, itemID).
		Scan(&stat.ItemType, &stat.ItemID, &stat.ViewCount, &stat.UpdatedAt)
	if err != nil {
		return ItemStat{}, dberr.Wrap(err, "get_item_stat")
	}

	return stat, nil
}

func (repository *PostgresRepository) Add(context context.Context, itemType, itemID string, delta int64) error {
	t := schema.StatsItemStat
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = item_stat.%s + EXCLUDED.%s, %s = NOW()
	`,
		t.Table, t.ItemType, t.ItemID, t.ViewCount, t.UpdatedAt,
		t.ItemType, t.ItemID,
		t.ViewCount, t.ViewCount, t.ViewCount, t.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query, itemType, itemID, delta)
	return dberr.Wrap(err, "add_item_stat")
}
