// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/content/achievement"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/pkg/collate"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func staticRows() []achievement.Row {
	return []achievement.Row{
		{ID: "a1", Type: "award", Title: "Hackathon Winner", Organization: "DevFest", Image: "i", Month: "March", Year: 2023},
		{ID: "a2", Type: "certificate", Title: "Cloud Architect", Organization: "GCP", Image: "i", Month: "November", Year: 2024},
		{ID: "a3", Type: "award", Title: "Best Paper", Organization: "ICSE", Image: "i", Month: "June", Year: 2024},
	}
}

func TestListAchievements_SortedLatestFirst(t *testing.T) {
	service := achievement.NewService(nil, staticRows(), discard)

	achievements, err := service.ListAchievements(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, achievements, 3)
	assert.Equal(t, "a2", achievements[0].ID)
	assert.Equal(t, "a3", achievements[1].ID)
	assert.Equal(t, "a1", achievements[2].ID)
}

func TestListAchievements_TypeFilter(t *testing.T) {
	service := achievement.NewService(nil, staticRows(), discard)

	achievements, err := service.ListAchievements(context.Background(), "award")

	require.NoError(t, err)
	require.Len(t, achievements, 2)
	for _, a := range achievements {
		assert.Equal(t, achievement.TypeAward, a.Type)
	}

	all, err := service.ListAchievements(context.Background(), collate.AllCategories)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGroupByYear(t *testing.T) {
	service := achievement.NewService(nil, staticRows(), discard)

	groups, years, err := service.GroupByYear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, years)
	require.Len(t, groups[2024], 2)
	assert.Equal(t, "a2", groups[2024][0].ID) // November before June
	assert.Equal(t, "a3", groups[2024][1].ID)
}

func TestGetAchievement_StaticLookup(t *testing.T) {
	service := achievement.NewService(nil, staticRows(), discard)

	a, err := service.GetAchievement(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Hackathon Winner", a.Title)

	_, err = service.GetAchievement(context.Background(), "missing")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestCreateAchievement_RefusedWhenUnconfigured(t *testing.T) {
	service := achievement.NewService(nil, nil, discard)

	err := service.CreateAchievement(context.Background(), &achievement.Achievement{})
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_CONFIGURED", apperr.As(err).Code)
}

type fakeRepository struct {
	rows    []achievement.Row
	created *achievement.Row
}

func (f *fakeRepository) ListAchievements(context.Context) ([]achievement.Row, error) {
	return f.rows, nil
}

func (f *fakeRepository) GetAchievement(context.Context, string) (achievement.Row, error) {
	return achievement.Row{}, apperr.NotFound("Achievement")
}

func (f *fakeRepository) CreateAchievement(_ context.Context, row *achievement.Row) error {
	f.created = row
	return nil
}

func (f *fakeRepository) UpdateAchievement(context.Context, *achievement.Row) error { return nil }
func (f *fakeRepository) DeleteAchievement(context.Context, string) error           { return nil }

func TestListAchievements_QueriesStoreWhenConfigured(t *testing.T) {
	repo := &fakeRepository{rows: []achievement.Row{
		{ID: "db1", Type: "award", Title: "Stored", Month: "May", Year: 2025},
	}}
	service := achievement.NewService(repo, staticRows(), discard)

	achievements, err := service.ListAchievements(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "db1", achievements[0].ID)
}

func TestCreateAchievement_RejectsUnknownType(t *testing.T) {
	repo := &fakeRepository{}
	service := achievement.NewService(repo, nil, discard)

	a := &achievement.Achievement{
		Type:         "trophy",
		Title:        "Hackathon Winner",
		Organization: "DevFest",
		Image:        "i",
		Date:         collate.YearMonth{Month: "March", Year: 2023},
	}

	err := service.CreateAchievement(context.Background(), a)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateAchievement_AssignsID(t *testing.T) {
	repo := &fakeRepository{}
	service := achievement.NewService(repo, nil, discard)

	a := &achievement.Achievement{
		Type:         achievement.TypeAward,
		Title:        "Hackathon Winner",
		Organization: "DevFest",
		Image:        "i",
		Date:         collate.YearMonth{Month: "March", Year: 2023},
	}

	require.NoError(t, service.CreateAchievement(context.Background(), a))
	assert.NotEmpty(t, a.ID)
	require.NotNil(t, repo.created)
}
