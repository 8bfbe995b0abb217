// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement

import (
	"context"
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

// ListAchievements returns achievements, optionally filtered by type,
// sorted most-recent-first (year desc, month desc, stable).
func (service *Service) ListAchievements(ctx context.Context, typeFilter string) ([]Achievement, error) {
	var query func(context.Context) ([]Row, error)
	if service.repo != nil {
		query = service.repo.ListAchievements
	}

	achievements, err := fallback.Fetch(ctx, service.logger, query, service.static, FromRow, true)
	if err != nil {
		return nil, err
	}

	if typeFilter != "" && typeFilter != collate.AllCategories {
		filtered := achievements[:0:0]
		for _, a := range achievements {
			if string(a.Type) == typeFilter {
				filtered = append(filtered, a)
			}
		}
		achievements = filtered
	}

	collate.SortByDateDesc(achievements, func(a Achievement) collate.YearMonth { return a.Date })
	return achievements, nil
}

// GroupByYear partitions achievements for the "section per year" layout.
// The returned years enumerate descending.
func (service *Service) GroupByYear(context context.Context) (map[int][]Achievement, []int, error) {
	achievements, err := service.ListAchievements(context, "")
	if err != nil {
		return nil, nil, err
	}

	groups, years := collate.GroupByYear(achievements, func(a Achievement) (collate.YearMonth, bool) {
		return a.Date, true
	})
	return groups, years, nil
}

func (service *Service) GetAchievement(context context.Context, id string) (*Achievement, error) {
	if service.repo == nil {
		for _, row := range service.static {
			if row.ID == id {
				a := FromRow(row)
				return &a, nil
			}
		}
		return nil, apperr.NotFound("Achievement")
	}

	row, err := service.repo.GetAchievement(context, id)
	if err != nil {
		return nil, err
	}

	a := FromRow(row)
	return &a, nil
}

func (service *Service) CreateAchievement(context context.Context, a *Achievement) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateAchievement(a); err != nil {
		return err
	}

	if a.ID == "" {
		a.ID = uuidv7.New()
	}

	row := ToRow(*a)
	if err := service.repo.CreateAchievement(context, &row); err != nil {
		return err
	}

	*a = FromRow(row)
	service.logger.Info("achievement_created", slog.String("achievement_id", a.ID), slog.String("title", a.Title))
	return nil
}

func (service *Service) UpdateAchievement(context context.Context, id string, a *Achievement) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	a.ID = id
	if err := validateAchievement(a); err != nil {
		return err
	}

	row := ToRow(*a)
	if err := service.repo.UpdateAchievement(context, &row); err != nil {
		return err
	}

	*a = FromRow(row)
	service.logger.Info("achievement_updated", slog.String("achievement_id", id))
	return nil
}

func (service *Service) DeleteAchievement(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := service.repo.DeleteAchievement(context, id); err != nil {
		return err
	}

	service.logger.Warn("achievement_deleted", slog.String("achievement_id", id))
	return nil
}

func validateAchievement(a *Achievement) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, a.Title).MaxLen(FieldTitle, a.Title, 200).
		Required(FieldOrganization, a.Organization).
		Required(FieldImage, a.Image).
		OneOf(FieldType, string(a.Type), Types...).
		Custom(FieldDate, collate.MonthIndex(a.Date.Month) < 0, "Must be a full English month name").
		Custom(FieldDate, a.Date.Year < 1900, "Year must be plausible")

	if a.Link != nil {
		validator.URL(FieldLink, *a.Link)
	}

	return validator.Err()
}
