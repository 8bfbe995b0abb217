// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/pkg/collate"
	"github.com/longpd/folio/pkg/pointer"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	rows    []Row
	listErr error
	created *Row
	updated *Row
	deleted string
}

func (f *fakeRepository) ListProjects(context.Context) ([]Row, error) {
	return f.rows, f.listErr
}

func (f *fakeRepository) GetProject(_ context.Context, id string) (Row, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return Row{}, apperr.NotFound("Project")
}

func (f *fakeRepository) CreateProject(_ context.Context, row *Row) error {
	f.created = row
	return nil
}

func (f *fakeRepository) UpdateProject(_ context.Context, row *Row) error {
	f.updated = row
	return nil
}

func (f *fakeRepository) DeleteProject(_ context.Context, id string) error {
	f.deleted = id
	return nil
}

func pinClock(t *testing.T, at collate.YearMonth) {
	t.Helper()
	previous := nowYearMonth
	nowYearMonth = func() collate.YearMonth { return at }
	t.Cleanup(func() { nowYearMonth = previous })
}

func staticRows() []Row {
	return []Row{
		{ID: "old", Title: "Archive", Description: "d", Image: "i", StartMonth: "May", StartYear: 2020, EndMonth: pointer.To("June"), EndYear: pointer.To(2020), Categories: []string{"web"}},
		{ID: "current", Title: "Live", Description: "d", Image: "i", StartMonth: "January", StartYear: 2023, IsOngoing: true, Categories: []string{"iot"}},
		{ID: "recent", Title: "Recent", Description: "d", Image: "i", StartMonth: "February", StartYear: 2024, EndMonth: pointer.To("July"), EndYear: pointer.To(2024), Categories: []string{"web"}},
	}
}

func TestListProjects_StaticFallbackWhenUnconfigured(t *testing.T) {
	pinClock(t, collate.YearMonth{Month: "January", Year: 2025})
	service := NewService(nil, staticRows(), discard)

	projects, err := service.ListProjects(context.Background(), collate.AllCategories)

	require.NoError(t, err)
	require.Len(t, projects, 3)
	// Ongoing sorts as "now", ahead of everything completed.
	assert.Equal(t, "current", projects[0].ID)
	assert.Equal(t, "recent", projects[1].ID)
	assert.Equal(t, "old", projects[2].ID)
}

func TestListProjects_StaticFallbackOnQueryError(t *testing.T) {
	pinClock(t, collate.YearMonth{Month: "January", Year: 2025})
	repo := &fakeRepository{listErr: errors.New("connection refused")}
	service := NewService(repo, staticRows(), discard)

	projects, err := service.ListProjects(context.Background(), collate.AllCategories)

	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestListProjects_CategoryFilter(t *testing.T) {
	pinClock(t, collate.YearMonth{Month: "January", Year: 2025})
	service := NewService(nil, staticRows(), discard)

	projects, err := service.ListProjects(context.Background(), "web")

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "recent", projects[0].ID)
	assert.Equal(t, "old", projects[1].ID)
}

func TestGetProject_StaticLookup(t *testing.T) {
	service := NewService(nil, staticRows(), discard)

	p, err := service.GetProject(context.Background(), "current")
	require.NoError(t, err)
	assert.Equal(t, "Live", p.Title)

	_, err = service.GetProject(context.Background(), "missing")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreateProject_RefusedWhenUnconfigured(t *testing.T) {
	service := NewService(nil, staticRows(), discard)

	err := service.CreateProject(context.Background(), &Project{Title: "x"})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_CONFIGURED", appErr.Code)
}

func TestCreateProject_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := NewService(repo, nil, discard)

	err := service.CreateProject(context.Background(), &Project{Title: "No image or dates"})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateProject_AssignsID(t *testing.T) {
	repo := &fakeRepository{}
	service := NewService(repo, nil, discard)

	p := &Project{
		Title:       "Route Planner",
		Description: "Multi-stop routing",
		Image:       "https://cdn.folio.dev/planner.png",
		StartDate:   collate.YearMonth{Month: "March", Year: 2024},
		IsOngoing:   true,
	}

	require.NoError(t, service.CreateProject(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, p.ID, repo.created.ID)
}

func TestUpdateProject_PathIDWins(t *testing.T) {
	repo := &fakeRepository{}
	service := NewService(repo, nil, discard)

	p := &Project{
		ID:          "body-id",
		Title:       "Route Planner",
		Description: "Multi-stop routing",
		Image:       "https://cdn.folio.dev/planner.png",
		StartDate:   collate.YearMonth{Month: "March", Year: 2024},
	}

	require.NoError(t, service.UpdateProject(context.Background(), "path-id", p))
	require.NotNil(t, repo.updated)
	assert.Equal(t, "path-id", repo.updated.ID)
}

func TestDeleteProject(t *testing.T) {
	repo := &fakeRepository{}
	service := NewService(repo, nil, discard)

	require.NoError(t, service.DeleteProject(context.Background(), "p1"))
	assert.Equal(t, "p1", repo.deleted)

	err := NewService(nil, nil, discard).DeleteProject(context.Background(), "p1")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_CONFIGURED", apperr.As(err).Code)
}

func TestValidateProject_LinkMustBeURL(t *testing.T) {
	p := &Project{
		Title:       "Route Planner",
		Description: "d",
		Image:       "i",
		StartDate:   collate.YearMonth{Month: "March", Year: 2024},
		Link:        pointer.To("not a url"),
	}

	err := validateProject(p)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
