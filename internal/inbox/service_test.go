// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package inbox_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/inbox"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/pkg/pagination"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	rows      []inbox.Row
	created   *inbox.Row
	unreadIDs []string
	markErrs  map[string]error
	marked    []string
}

func (f *fakeRepository) List(_ context.Context, params pagination.Params, _ bool) ([]inbox.Row, int, error) {
	return f.rows, len(f.rows), nil
}

func (f *fakeRepository) Create(_ context.Context, row *inbox.Row) error {
	f.created = row
	return nil
}

func (f *fakeRepository) MarkRead(_ context.Context, id string) error {
	if err := f.markErrs[id]; err != nil {
		return err
	}
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeRepository) UnreadIDs(context.Context) ([]string, error) {
	return f.unreadIDs, nil
}

func (f *fakeRepository) Delete(context.Context, string) error { return nil }

func TestListMessages_EmptyWhenUnconfigured(t *testing.T) {
	service := inbox.NewService(nil, discard)

	messages, meta, err := service.ListMessages(context.Background(), pagination.Params{Page: 1, Limit: 20}, false)

	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
	assert.Equal(t, 0, meta.Total)
}

func TestCreateMessage_RefusedWhenUnconfigured(t *testing.T) {
	service := inbox.NewService(nil, discard)

	err := service.CreateMessage(context.Background(), &inbox.Message{
		Name: "Visitor", Email: "v@example.com", Message: "Hello",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_CONFIGURED", appErr.Code)
}

func TestCreateMessage_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := inbox.NewService(repo, discard)

	tests := []struct {
		name    string
		message inbox.Message
	}{
		{"missing_name", inbox.Message{Email: "v@example.com", Message: "hi"}},
		{"bad_email", inbox.Message{Name: "Visitor", Email: "not-an-email", Message: "hi"}},
		{"missing_body", inbox.Message{Name: "Visitor", Email: "v@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateMessage(context.Background(), &tt.message)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
	assert.Nil(t, repo.created)
}

// The submitter has no say over identity or read state.
func TestCreateMessage_ForcesServerOwnedFields(t *testing.T) {
	repo := &fakeRepository{}
	service := inbox.NewService(repo, discard)

	message := &inbox.Message{
		ID: "client-chosen", Read: true,
		Name: "Visitor", Email: "v@example.com", Message: "Hello there",
	}

	require.NoError(t, service.CreateMessage(context.Background(), message))
	assert.NotEqual(t, "client-chosen", message.ID)
	assert.False(t, message.Read)
	require.NotNil(t, repo.created)
}

func TestMarkAllRead_ReportsPartialFailure(t *testing.T) {
	repo := &fakeRepository{
		unreadIDs: []string{"m1", "m2", "m3"},
		markErrs:  map[string]error{"m2": errors.New("deadlock detected")},
	}
	service := inbox.NewService(repo, discard)

	result, err := service.MarkAllRead(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Marked)
	assert.Equal(t, []string{"m2"}, result.FailedIDs)
	assert.Equal(t, []string{"m1", "m3"}, repo.marked)
}

func TestMarkAllRead_NothingUnread(t *testing.T) {
	service := inbox.NewService(&fakeRepository{}, discard)

	result, err := service.MarkAllRead(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.Marked)
	assert.Empty(t, result.FailedIDs)
}
