// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/longpd/folio/internal/content/fallback"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/dberr"
	"github.com/longpd/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository // nil when the store is unconfigured
	static []Row
	logger *slog.Logger
}

func NewService(repo Repository, static []Row, logger *slog.Logger) *Service {
	return &Service{repo: repo, static: static, logger: logger}
}

func (service *Service) ListSettings(ctx context.Context) ([]Setting, error) {
	var query func(context.Context) ([]Row, error)
	if service.repo != nil {
		query = service.repo.List
	}

	return fallback.Fetch(ctx, service.logger, query, service.static, FromRow, true)
}

// GetSetting resolves one key, consulting the static snapshot when the
// store is unconfigured or does not hold the key.
func (service *Service) GetSetting(context context.Context, key string) (Setting, error) {
	if service.repo != nil {
		row, err := service.repo.Get(context, key)
		if err == nil {
			return FromRow(row), nil
		}
		if !errors.Is(err, dberr.ErrNotFound) {
			return Setting{}, err
		}
	}

	for _, row := range service.static {
		if row.Key == key {
			return FromRow(row), nil
		}
	}

	return Setting{}, apperr.NotFound("Setting")
}

func (service *Service) SetSetting(context context.Context, setting *Setting) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateSetting(setting); err != nil {
		return err
	}

	row := ToRow(*setting)
	if err := service.repo.Upsert(context, &row); err != nil {
		return err
	}

	*setting = FromRow(row)
	service.logger.Info("setting_written", slog.String("key", setting.Key))
	return nil
}

func (service *Service) DeleteSetting(context context.Context, key string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := service.repo.Delete(context, key); err != nil {
		return err
	}

	service.logger.Warn("setting_deleted", slog.String("key", key))
	return nil
}

func validateSetting(setting *Setting) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldKey, setting.Key).
		MaxLen(FieldKey, setting.Key, 128).
		Required(FieldValue, setting.Value)

	return validator.Err()
}
