// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery

import "context"

// Repository is the storage contract for gallery images. A nil Repository
// means the relational store is unconfigured.
type Repository interface {
	// ListImages returns every image in a collection; an empty collection
	// string returns all images.
	ListImages(context context.Context, collection string) ([]Row, error)
	CreateImage(context context.Context, row *Row) error
	UpdateImage(context context.Context, row *Row) error
	DeleteImage(context context.Context, id string) error
}
