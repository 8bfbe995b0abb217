// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package blog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/content/blog"
	"github.com/longpd/folio/internal/platform/apperr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	rows    map[string]blog.Row // keyed by slug
	created *blog.Row
	updated *blog.Row
}

func (f *fakeRepository) List(context.Context, bool, []string) ([]blog.Row, error) {
	var rows []blog.Row
	for _, row := range f.rows {
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (blog.Row, error) {
	row, ok := f.rows[slug]
	if !ok {
		return blog.Row{}, apperr.NotFound("Blog post")
	}
	return row, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (blog.Row, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return blog.Row{}, apperr.NotFound("Blog post")
}

func (f *fakeRepository) Create(_ context.Context, row *blog.Row) error {
	f.created = row
	return nil
}

func (f *fakeRepository) Update(_ context.Context, row *blog.Row) error {
	f.updated = row
	return nil
}

func (f *fakeRepository) Delete(context.Context, string) error { return nil }

type fakeViewCounter struct {
	increments   []string
	counts       map[string]int64
	incrementErr error
}

func (f *fakeViewCounter) Increment(_ context.Context, itemType, itemID string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments = append(f.increments, itemType+":"+itemID)
	return nil
}

func (f *fakeViewCounter) Count(_ context.Context, _, itemID string) (int64, error) {
	return f.counts[itemID], nil
}

func publishedRow(id, slug string) blog.Row {
	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return blog.Row{
		ID: id, Slug: slug, Title: "Post " + id, Excerpt: "e", Content: "# Hi",
		Author: "Long", Published: true, PublishedAt: &at,
	}
}

func TestListBlogs_EmptyWhenUnconfigured(t *testing.T) {
	service := blog.NewService(nil, nil, discard)

	blogs, err := service.ListBlogs(context.Background(), nil, false)

	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)
}

func TestGetBlog_CountsView(t *testing.T) {
	repo := &fakeRepository{rows: map[string]blog.Row{"hello": publishedRow("b1", "hello")}}
	views := &fakeViewCounter{counts: map[string]int64{"b1": 41}}
	service := blog.NewService(repo, views, discard)

	b, err := service.GetBlog(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, []string{"blog:b1"}, views.increments)
	assert.Equal(t, int64(41), b.ViewCount)
}

// A broken counter degrades to view_count 0, never to a failed request.
func TestGetBlog_SurvivesCounterFailure(t *testing.T) {
	repo := &fakeRepository{rows: map[string]blog.Row{"hello": publishedRow("b1", "hello")}}
	views := &fakeViewCounter{incrementErr: errors.New("redis down")}
	service := blog.NewService(repo, views, discard)

	b, err := service.GetBlog(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
}

func TestGetBlog_DraftInvisible(t *testing.T) {
	draft := publishedRow("b2", "draft")
	draft.Published = false
	repo := &fakeRepository{rows: map[string]blog.Row{"draft": draft}}
	service := blog.NewService(repo, nil, discard)

	_, err := service.GetBlog(context.Background(), "draft")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetBlog_UnconfiguredIsNotFound(t *testing.T) {
	service := blog.NewService(nil, nil, discard)

	_, err := service.GetBlog(context.Background(), "anything")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestRenderHTML_DoesNotCountView(t *testing.T) {
	repo := &fakeRepository{rows: map[string]blog.Row{"hello": publishedRow("b1", "hello")}}
	views := &fakeViewCounter{}
	service := blog.NewService(repo, views, discard)

	html, err := service.RenderHTML(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", html)
	assert.Empty(t, views.increments)
}

func TestCreateBlog_DerivesSlugFromTitle(t *testing.T) {
	repo := &fakeRepository{}
	service := blog.NewService(repo, nil, discard)

	b := &blog.Blog{Title: "Why Go Ships Fast", Content: "body", Author: "Long"}

	require.NoError(t, service.CreateBlog(context.Background(), b))
	assert.Equal(t, "why-go-ships-fast", b.Slug)
	assert.NotEmpty(t, b.ID)
}

func TestCreateBlog_StampsPublishedAt(t *testing.T) {
	repo := &fakeRepository{}
	service := blog.NewService(repo, nil, discard)

	b := &blog.Blog{Title: "Launch", Content: "body", Author: "Long", Published: true}

	require.NoError(t, service.CreateBlog(context.Background(), b))
	require.NotNil(t, b.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *b.PublishedAt, time.Minute)
}

func TestCreateBlog_Validation(t *testing.T) {
	service := blog.NewService(&fakeRepository{}, nil, discard)

	err := service.CreateBlog(context.Background(), &blog.Blog{Content: "body", Author: "Long"})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// Editing a published post must not reset its publication time.
func TestUpdateBlog_PreservesPublishedAt(t *testing.T) {
	existing := publishedRow("b1", "hello")
	repo := &fakeRepository{rows: map[string]blog.Row{"hello": existing}}
	service := blog.NewService(repo, nil, discard)

	b := &blog.Blog{Title: "Hello (edited)", Content: "body", Author: "Long", Published: true}

	require.NoError(t, service.UpdateBlog(context.Background(), "b1", b))
	require.NotNil(t, b.PublishedAt)
	assert.Equal(t, *existing.PublishedAt, *b.PublishedAt)
}

func TestUpdateBlog_FirstPublishStampsTime(t *testing.T) {
	draft := publishedRow("b1", "hello")
	draft.Published = false
	draft.PublishedAt = nil
	repo := &fakeRepository{rows: map[string]blog.Row{"hello": draft}}
	service := blog.NewService(repo, nil, discard)

	b := &blog.Blog{Title: "Hello", Content: "body", Author: "Long", Published: true}

	require.NoError(t, service.UpdateBlog(context.Background(), "b1", b))
	require.NotNil(t, b.PublishedAt)
}

func TestWrites_RefusedWhenUnconfigured(t *testing.T) {
	service := blog.NewService(nil, nil, discard)

	for name, err := range map[string]error{
		"create": service.CreateBlog(context.Background(), &blog.Blog{Title: "x", Content: "c", Author: "a"}),
		"update": service.UpdateBlog(context.Background(), "id", &blog.Blog{Title: "x", Content: "c", Author: "a"}),
		"delete": service.DeleteBlog(context.Background(), "id"),
	} {
		appErr := apperr.As(err)
		require.NotNil(t, appErr, name)
		assert.Equal(t, "NOT_CONFIGURED", appErr.Code, name)
	}
}
