// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package blog

import "context"

// Repository is the storage contract for blog posts. A nil Repository means
// the relational store is unconfigured; blogs have no static snapshot, so
// reads then serve empty results.
type Repository interface {
	// List returns posts newest-first (published_at, falling back to
	// created_at). A non-empty tags filter matches posts carrying any of
	// the tags. Unpublished drafts are included only when asked for.
	List(context context.Context, includeUnpublished bool, tags []string) ([]Row, error)
	GetBySlug(context context.Context, slug string) (Row, error)
	GetByID(context context.Context, id string) (Row, error)
	Create(context context.Context, row *Row) error
	Update(context context.Context, row *Row) error
	Delete(context context.Context, id string) error
}
