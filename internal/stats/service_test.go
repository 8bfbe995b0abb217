// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/constants"
	"github.com/longpd/folio/internal/platform/dberr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	stats map[string]ItemStat // keyed by itemType:itemID
}

func (f *fakeRepository) Get(_ context.Context, itemType, itemID string) (ItemStat, error) {
	stat, ok := f.stats[itemType+":"+itemID]
	if !ok {
		return ItemStat{}, dberr.ErrNotFound
	}
	return stat, nil
}

func (f *fakeRepository) Add(context.Context, string, string, int64) error { return nil }

func TestGetStat_ZeroWhenUnconfigured(t *testing.T) {
	service := NewService(nil, nil, discard)

	stat, err := service.GetStat(context.Background(), "blog", "b1")

	require.NoError(t, err)
	assert.Equal(t, "blog", stat.ItemType)
	assert.Equal(t, "b1", stat.ItemID)
	assert.Zero(t, stat.ViewCount)
}

// An item nobody has viewed yet is a zero counter, not a 404.
func TestGetStat_ZeroWhenNeverViewed(t *testing.T) {
	service := NewService(&fakeRepository{}, nil, discard)

	stat, err := service.GetStat(context.Background(), "project", "p1")

	require.NoError(t, err)
	assert.Zero(t, stat.ViewCount)
}

func TestGetStat_ReadsDurableCounter(t *testing.T) {
	repo := &fakeRepository{stats: map[string]ItemStat{
		"blog:b1": {ItemType: "blog", ItemID: "b1", ViewCount: 128},
	}}
	service := NewService(repo, nil, discard)

	count, err := service.Count(context.Background(), "blog", "b1")

	require.NoError(t, err)
	assert.Equal(t, int64(128), count)
}

func TestGetStat_RejectsUnknownItemType(t *testing.T) {
	service := NewService(nil, nil, discard)

	_, err := service.GetStat(context.Background(), "comment", "c1")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestIncrement_RejectsBadKey(t *testing.T) {
	service := NewService(nil, nil, discard)

	assert.Error(t, service.Increment(context.Background(), "comment", "c1"))
	assert.Error(t, service.Increment(context.Background(), "blog", ""))
}

func TestParseBufferKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		itemType string
		itemID   string
		ok       bool
	}{
		{"blog_key", constants.RedisPrefixViewCount + "blog:b1", "blog", "b1", true},
		{"id_with_colon", constants.RedisPrefixViewCount + "blog:a:b", "blog", "a:b", true},
		{"wrong_prefix", "other:blog:b1", "", "", false},
		{"missing_id", constants.RedisPrefixViewCount + "blog:", "", "", false},
		{"missing_type", constants.RedisPrefixViewCount + ":b1", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemType, itemID, ok := parseBufferKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.itemType, itemType)
			assert.Equal(t, tt.itemID, itemID)
		})
	}
}
