// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package stats implements the per-item view counters.

Counters are keyed by (item_type, item_id). Increments land in a Redis
buffer so a page view costs one INCR; a scheduled flusher folds the buffered
deltas into Postgres, which serves all reads. Counts therefore trail live
traffic by at most one flush interval.
*/
package stats

import "time"

// ItemStat is one view counter.
type ItemStat struct {
	ItemType  string    `json:"item_type"`
	ItemID    string    `json:"item_id"`
	ViewCount int64     `json:"view_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldItemType = "item_type"
	FieldItemID   = "item_id"
)

// ItemTypes lists the item kinds that carry counters.
var ItemTypes = []string{"blog", "project"}
