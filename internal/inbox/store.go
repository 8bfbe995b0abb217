// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package inbox

import (
	"context"

	"github.com/longpd/folio/pkg/pagination"
)

// Repository is the storage contract for contact messages. A nil Repository
// means the relational store is unconfigured.
type Repository interface {
	// List returns a page of messages newest-first plus the total count
	// matching the filter.
	List(context context.Context, params pagination.Params, unreadOnly bool) ([]Row, int, error)
	Create(context context.Context, row *Row) error
	MarkRead(context context.Context, id string) error
	// UnreadIDs returns the ids of every unread message, oldest first.
	UnreadIDs(context context.Context) ([]string, error)
	Delete(context context.Context, id string) error
}
