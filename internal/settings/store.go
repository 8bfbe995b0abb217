// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package settings

import "context"

// Repository is the storage contract for settings. A nil Repository means
// the relational store is unconfigured.
type Repository interface {
	List(context context.Context) ([]Row, error)
	Get(context context.Context, key string) (Row, error)
	// Upsert creates the key when absent and overwrites it when present.
	Upsert(context context.Context, row *Row) error
	Delete(context context.Context, key string) error
}
