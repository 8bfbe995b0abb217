// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

import (
	"context"
	"errors"
	"log/slog"

	"github.com/longpd/folio/internal/platform/dberr"
	"github.com/longpd/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository // nil when the store is unconfigured
	buffer *Buffer
	logger *slog.Logger
}

func NewService(repo Repository, buffer *Buffer, logger *slog.Logger) *Service {
	return &Service{repo: repo, buffer: buffer, logger: logger}
}

// Increment buffers one view. Views are best-effort by design; callers on
// the read path should log a failure rather than propagate it.
func (service *Service) Increment(context context.Context, itemType, itemID string) error {
	if err := validateKey(itemType, itemID); err != nil {
		return err
	}

	return service.buffer.Increment(context, itemType, itemID)
}

// GetStat reads the durable counter. An item that has never been viewed
// (or an unconfigured store) reports zero rather than not-found.
func (service *Service) GetStat(context context.Context, itemType, itemID string) (ItemStat, error) {
	if err := validateKey(itemType, itemID); err != nil {
		return ItemStat{}, err
	}

	zero := ItemStat{ItemType: itemType, ItemID: itemID}
	if service.repo == nil {
		return zero, nil
	}

	stat, err := service.repo.Get(context, itemType, itemID)
	if errors.Is(err, dberr.ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return ItemStat{}, err
	}

	return stat, nil
}

// Count satisfies the view-counter contract consumed by content services.
func (service *Service) Count(context context.Context, itemType, itemID string) (int64, error) {
	stat, err := service.GetStat(context, itemType, itemID)
	if err != nil {
		return 0, err
	}
	return stat.ViewCount, nil
}

// Flush folds every buffered delta into Postgres. A delta that cannot be
// written is restored to the buffer for the next sweep. Without a
// configured store the buffer is left untouched.
func (service *Service) Flush(context context.Context) {
	if service.repo == nil {
		return
	}

	deltas, err := service.buffer.Drain(context)
	if err != nil {
		service.logger.Error("stats_flush_drain_failed", slog.Any("error", err))
		// Fall through: deltas drained before the failure still need writing.
	}

	var flushed int64
	for _, delta := range deltas {
		if err := service.repo.Add(context, delta.ItemType, delta.ItemID, delta.Count); err != nil {
			service.logger.Error("stats_flush_write_failed",
				slog.String("item_type", delta.ItemType),
				slog.String("item_id", delta.ItemID),
				slog.Any("error", err))

			if restoreErr := service.buffer.Restore(context, delta); restoreErr != nil {
				service.logger.Error("stats_flush_restore_failed",
					slog.String("item_id", delta.ItemID),
					slog.Any("error", restoreErr))
			}
			continue
		}
		flushed += delta.Count
	}

	if flushed > 0 {
		service.logger.Info("stats_flushed",
			slog.Int("keys", len(deltas)), slog.Int64("views", flushed))
	}
}

func validateKey(itemType, itemID string) error {
	validator := &validate.Validator{}
	validator.
		OneOf(FieldItemType, itemType, ItemTypes...).
		Required(FieldItemID, itemID)

	return validator.Err()
}
