// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/profile"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func staticEntries() map[profile.Section][]profile.Row {
	return map[profile.Section][]profile.Row{
		profile.SectionExperience: {
			{Title: "Backend Engineer", SortOrder: 1},
			{Title: "Intern", SortOrder: 2},
			{Title: "Senior Engineer", SortOrder: 0},
		},
		profile.SectionSkill: {
			{Title: "Go", SortOrder: 0},
			{Title: "PostgreSQL", SortOrder: 1},
		},
	}
}

func TestListSection_SortedBySortOrder(t *testing.T) {
	service := profile.NewService(nil, staticEntries(), discard)

	entries, err := service.ListSection(context.Background(), profile.SectionExperience)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "Backend Engineer", entries[1].Title)
	assert.Equal(t, "Intern", entries[2].Title)
}

func TestListSection_UnknownSectionRejected(t *testing.T) {
	service := profile.NewService(nil, staticEntries(), discard)

	_, err := service.ListSection(context.Background(), "hobbies")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestListSection_EmptySectionStillAList(t *testing.T) {
	service := profile.NewService(nil, staticEntries(), discard)

	entries, err := service.ListSection(context.Background(), profile.SectionLeadership)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetProfile_AggregatesAllSections(t *testing.T) {
	service := profile.NewService(nil, staticEntries(), discard)

	p, err := service.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Skills, 2)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Leadership)
}

func TestCreateEntry_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := profile.NewService(repo, nil, discard)

	err := service.CreateEntry(context.Background(), profile.SectionSkill, &profile.Entry{SortOrder: -1})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Details, 2) // missing title and negative sort order
}

func TestCreateEntry_AssignsID(t *testing.T) {
	repo := &fakeRepository{}
	service := profile.NewService(repo, nil, discard)

	entry := &profile.Entry{Title: "Go", SortOrder: 0}

	require.NoError(t, service.CreateEntry(context.Background(), profile.SectionSkill, entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, profile.SectionSkill, repo.createdIn)
}

func TestListSection_QueriesStoreWhenConfigured(t *testing.T) {
	repo := &fakeRepository{rows: map[profile.Section][]profile.Row{
		profile.SectionSkill: {{ID: "db1", Title: "Rust", SortOrder: 0}},
	}}
	service := profile.NewService(repo, staticEntries(), discard)

	entries, err := service.ListSection(context.Background(), profile.SectionSkill)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rust", entries[0].Title)
}

func TestWrites_RefusedWhenUnconfigured(t *testing.T) {
	service := profile.NewService(nil, staticEntries(), discard)

	err := service.DeleteEntry(context.Background(), profile.SectionSkill, "id")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_CONFIGURED", apperr.As(err).Code)
}

type fakeRepository struct {
	rows      map[profile.Section][]profile.Row
	createdIn profile.Section
}

func (f *fakeRepository) ListEntries(_ context.Context, section profile.Section) ([]profile.Row, error) {
	return f.rows[section], nil
}

func (f *fakeRepository) CreateEntry(_ context.Context, section profile.Section, _ *profile.Row) error {
	f.createdIn = section
	return nil
}

func (f *fakeRepository) UpdateEntry(context.Context, profile.Section, *profile.Row) error {
	return nil
}

func (f *fakeRepository) DeleteEntry(context.Context, profile.Section, string) error { return nil }
