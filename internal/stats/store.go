// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

import "context"

// Repository is the storage contract for the durable counters. A nil
// Repository means the relational store is unconfigured; counters then only
// accumulate in the buffer and reads report zero.
type Repository interface {
	Get(context context.Context, itemType, itemID string) (ItemStat, error)
	// Add folds a buffered delta into the durable counter, creating the
	// row when absent.
	Add(context context.Context, itemType, itemID string, delta int64) error
}
