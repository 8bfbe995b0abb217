// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/validate"
	"github.com/longpd/folio/pkg/markdown"
	"github.com/longpd/folio/pkg/slice"
	"github.com/longpd/folio/pkg/slug"
	"github.com/longpd/folio/pkg/uuidv7"
)

// ViewCounter records and reports per-item view counts. It is satisfied by
// the stats service; a nil ViewCounter disables counting.
type ViewCounter interface {
	Increment(context context.Context, itemType, itemID string) error
	Count(context context.Context, itemType, itemID string) (int64, error)
}

type Service struct {
	repo   Repository // nil when the store is unconfigured
	views  ViewCounter
	logger *slog.Logger
}

func NewService(repo Repository, views ViewCounter, logger *slog.Logger) *Service {
	return &Service{repo: repo, views: views, logger: logger}
}

// ListBlogs returns posts newest-first. Without a configured store there is
// nothing to serve; blogs carry no static snapshot, so the empty list is the
// legitimate result rather than an error.
func (service *Service) ListBlogs(context context.Context, tags []string, includeUnpublished bool) ([]Blog, error) {
	if service.repo == nil {
		return []Blog{}, nil
	}

	rows, err := service.repo.List(context, includeUnpublished, tags)
	if err != nil {
		return nil, err
	}

	blogs := slice.Map(rows, FromRow)
	if blogs == nil {
		blogs = []Blog{}
	}
	for i := range blogs {
		service.attachViewCount(context, &blogs[i])
	}

	return blogs, nil
}

// GetBlog resolves a published post by slug and counts the view. Drafts are
// invisible on this path.
func (service *Service) GetBlog(context context.Context, postSlug string) (Blog, error) {
	b, err := service.findBySlug(context, postSlug)
	if err != nil {
		return Blog{}, err
	}

	if service.views != nil {
		if err := service.views.Increment(context, ItemType, b.ID); err != nil {
			// A lost view increment must never take down the read path.
			service.logger.Error("view_increment_failed", slog.String("blog_id", b.ID), slog.Any("error", err))
		}
	}

	service.attachViewCount(context, &b)
	return b, nil
}

// RenderHTML returns the post's Markdown content rendered to an HTML
// fragment. Rendering a post does not count as a view; the JSON detail
// fetch already did.
func (service *Service) RenderHTML(context context.Context, postSlug string) (string, error) {
	b, err := service.findBySlug(context, postSlug)
	if err != nil {
		return "", err
	}

	return markdown.Render(b.Content), nil
}

func (service *Service) findBySlug(context context.Context, postSlug string) (Blog, error) {
	if service.repo == nil {
		return Blog{}, apperr.NotFound("Blog post")
	}

	row, err := service.repo.GetBySlug(context, postSlug)
	if err != nil {
		return Blog{}, err
	}

	if !row.Published {
		return Blog{}, apperr.NotFound("Blog post")
	}

	return FromRow(row), nil
}

func (service *Service) CreateBlog(context context.Context, b *Blog) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if b.Slug == "" {
		b.Slug = slug.From(b.Title)
	}
	if err := validateBlog(b); err != nil {
		return err
	}

	if b.ID == "" {
		b.ID = uuidv7.New()
	}
	if b.Published && b.PublishedAt == nil {
		now := time.Now().UTC()
		b.PublishedAt = &now
	}

	row := ToRow(*b)
	if err := service.repo.Create(context, &row); err != nil {
		return err
	}

	*b = FromRow(row)
	service.logger.Info("blog_created", slog.String("blog_id", b.ID), slog.String("slug", b.Slug))
	return nil
}

func (service *Service) UpdateBlog(context context.Context, id string, b *Blog) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return err
	}

	b.ID = id
	if b.Slug == "" {
		b.Slug = slug.From(b.Title)
	}
	if err := validateBlog(b); err != nil {
		return err
	}

	// First transition to published stamps the publication time; it is
	// never reset on later edits.
	if b.PublishedAt == nil {
		if existing.PublishedAt != nil {
			b.PublishedAt = existing.PublishedAt
		} else if b.Published {
			now := time.Now().UTC()
			b.PublishedAt = &now
		}
	}

	row := ToRow(*b)
	if err := service.repo.Update(context, &row); err != nil {
		return err
	}

	*b = FromRow(row)
	service.attachViewCount(context, b)
	service.logger.Info("blog_updated", slog.String("blog_id", id))
	return nil
}

func (service *Service) DeleteBlog(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("blog_deleted", slog.String("blog_id", id))
	return nil
}

func (service *Service) attachViewCount(context context.Context, b *Blog) {
	if service.views == nil {
		return
	}

	count, err := service.views.Count(context, ItemType, b.ID)
	if err != nil {
		service.logger.Error("view_count_failed", slog.String("blog_id", b.ID), slog.Any("error", err))
		return
	}
	b.ViewCount = count
}

func validateBlog(b *Blog) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, b.Title).
		Required(FieldContent, b.Content).
		Required(FieldAuthor, b.Author).
		Required(FieldSlug, b.Slug).
		Slug(FieldSlug, b.Slug)

	return validator.Err()
}
