// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import "context"

// Repository is the storage contract for projects.
//
// A nil Repository means the relational store is unconfigured; the service
// then serves the static snapshot and refuses mutations.
type Repository interface {
	ListProjects(context context.Context) ([]Row, error)
	GetProject(context context.Context, id string) (Row, error)
	CreateProject(context context.Context, row *Row) error
	UpdateProject(context context.Context, row *Row) error
	DeleteProject(context context.Context, id string) error
}
