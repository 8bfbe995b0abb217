// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package fallback_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/content/fallback"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func itoa(n int) string { return strconv.Itoa(n) }

func TestFetch_UnconfiguredServesStatic(t *testing.T) {
	static := []int{1, 2, 3}

	got, err := fallback.Fetch(context.Background(), discard, nil, static, itoa, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestFetch_QueryResultPreferred(t *testing.T) {
	query := func(context.Context) ([]int, error) { return []int{9}, nil }

	got, err := fallback.Fetch(context.Background(), discard, query, []int{1, 2}, itoa, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, got)
}

func TestFetch_EmptyResultSubstitutedWhenGuaranteed(t *testing.T) {
	query := func(context.Context) ([]int, error) { return nil, nil }

	got, err := fallback.Fetch(context.Background(), discard, query, []int{7}, itoa, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, got)
}

func TestFetch_EmptyResultServedAsIsWithoutGuarantee(t *testing.T) {
	query := func(context.Context) ([]int, error) { return nil, nil }

	got, err := fallback.Fetch(context.Background(), discard, query, []int{7}, itoa, false)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetch_ErrorDegradesWhenGuaranteed(t *testing.T) {
	query := func(context.Context) ([]int, error) { return nil, errors.New("connection refused") }

	got, err := fallback.Fetch(context.Background(), discard, query, []int{4}, itoa, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, got)
}

func TestFetch_ErrorPropagatesWithoutGuarantee(t *testing.T) {
	boom := errors.New("connection refused")
	query := func(context.Context) ([]int, error) { return nil, boom }

	_, err := fallback.Fetch(context.Background(), discard, query, []int{4}, itoa, false)

	assert.ErrorIs(t, err, boom)
}

// JSON list endpoints must encode [] rather than null.
func TestFetch_NeverReturnsNilSlice(t *testing.T) {
	got, err := fallback.Fetch(context.Background(), discard, nil, nil, itoa, true)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
