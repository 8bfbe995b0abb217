// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile

import "context"

// Repository is the storage contract for profile sections. A nil Repository
// means the relational store is unconfigured.
type Repository interface {
	ListEntries(context context.Context, section Section) ([]Row, error)
	CreateEntry(context context.Context, section Section, row *Row) error
	UpdateEntry(context context.Context, section Section, row *Row) error
	DeleteEntry(context context.Context, section Section, id string) error
}
