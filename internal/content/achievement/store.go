// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement

import "context"

// Repository is the storage contract for achievements. A nil Repository
// means the relational store is unconfigured.
type Repository interface {
	ListAchievements(context context.Context) ([]Row, error)
	GetAchievement(context context.Context, id string) (Row, error)
	CreateAchievement(context context.Context, row *Row) error
	UpdateAchievement(context context.Context, row *Row) error
	DeleteAchievement(context context.Context, id string) error
}
