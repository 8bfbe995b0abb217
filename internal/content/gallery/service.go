// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery

import (
	"context"
	"hash/fnv"
	"log/slog"

	"github.com/longpd/folio/internal/content/fallback"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/validate"
	"github.com/longpd/folio/pkg/collate"
	"github.com/longpd/folio/pkg/uuidv7"
)

type Service struct {
	repo   Repository // nil when the store is unconfigured
	static []Row
	logger *slog.Logger
}

func NewService(repo Repository, static []Row, logger *slog.Logger) *Service {
	return &Service{repo: repo, static: static, logger: logger}
}

// ListImages returns a collection sorted most-recent-first. Dateless images
// keep their source position relative to each other and sort after dated
// ones within the stable ordering.
func (service *Service) ListImages(ctx context.Context, collection string) ([]Image, error) {
	var query func(context.Context) ([]Row, error)
	if service.repo != nil {
		query = func(ctx context.Context) ([]Row, error) {
			return service.repo.ListImages(ctx, collection)
		}
	}

	static := service.static
	if collection != "" {
		filtered := static[:0:0]
		for _, row := range static {
			if row.Collection == collection {
				filtered = append(filtered, row)
			}
		}
		static = filtered
	}

	images, err := fallback.Fetch(ctx, service.logger, query, static, FromRow, true)
	if err != nil {
		return nil, err
	}

	collate.SortByDateDesc(images, func(img Image) collate.YearMonth {
		if img.Date == nil {
			return collate.YearMonth{}
		}
		return *img.Date
	})

	return images, nil
}

// GroupByYear partitions dated images for the "section per year" layout.
// Images without a date are excluded and returned separately.
func (service *Service) GroupByYear(context context.Context, collection string) (map[int][]Image, []int, []Image, error) {
	images, err := service.ListImages(context, collection)
	if err != nil {
		return nil, nil, nil, err
	}

	groups, years := collate.GroupByYear(images, func(img Image) (collate.YearMonth, bool) {
		if img.Date == nil {
			return collate.YearMonth{}, false
		}
		return *img.Date, true
	})

	var undated []Image
	for _, img := range images {
		if img.Date == nil {
			undated = append(undated, img)
		}
	}

	return groups, years, undated, nil
}

// Masonry distributes a collection into weight-balanced columns.
//
// Weights are derived from a hash of the image URL, so they are computed
// identically on every call — the layout never jitters between renders.
func (service *Service) Masonry(context context.Context, collection string, columns int) ([][]Image, error) {
	images, err := service.ListImages(context, collection)
	if err != nil {
		return nil, err
	}

	return collate.Distribute(images, columns, weightFor), nil
}

// weightFor estimates a stable display height in the 1.0–2.0 range from
// the URL hash.
func weightFor(img Image) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(img.URL))
	return 1.0 + float64(h.Sum32()%1000)/1000.0
}

func (service *Service) CreateImage(context context.Context, img *Image) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateImage(img); err != nil {
		return err
	}

	if img.ID == "" {
		img.ID = uuidv7.New()
	}

	row := ToRow(*img)
	if err := service.repo.CreateImage(context, &row); err != nil {
		return err
	}

	*img = FromRow(row)
	service.logger.Info("gallery_image_created", slog.String("image_id", img.ID))
	return nil
}

func (service *Service) UpdateImage(context context.Context, id string, img *Image) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	img.ID = id
	if err := validateImage(img); err != nil {
		return err
	}

	row := ToRow(*img)
	if err := service.repo.UpdateImage(context, &row); err != nil {
		return err
	}

	*img = FromRow(row)
	service.logger.Info("gallery_image_updated", slog.String("image_id", id))
	return nil
}

func (service *Service) DeleteImage(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := service.repo.DeleteImage(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_image_deleted", slog.String("image_id", id))
	return nil
}

func validateImage(img *Image) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldURL, img.URL).URL(FieldURL, img.URL).
		OneOf(FieldCollection, string(img.Collection), Collections...)

	if img.Date != nil {
		validator.Custom("date", collate.MonthIndex(img.Date.Month) < 0, "Must be a full English month name")
	}

	return validator.Err()
}
