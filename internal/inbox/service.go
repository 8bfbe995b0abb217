// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package inbox

import (
	"context"
	"log/slog"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/validate"
	"github.com/longpd/folio/pkg/pagination"
	"github.com/longpd/folio/pkg/slice"
	"github.com/longpd/folio/pkg/uuidv7"
)

type Service struct {
	repo   Repository // nil when the store is unconfigured
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListMessages returns one admin page of messages newest-first. Without a
// configured store the inbox is empty, not an error.
func (service *Service) ListMessages(context context.Context, params pagination.Params, unreadOnly bool) ([]Message, pagination.Meta, error) {
	if service.repo == nil {
		return []Message{}, pagination.NewMeta(params.Page, params.Limit, 0), nil
	}

	rows, total, err := service.repo.List(context, params, unreadOnly)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	messages := slice.Map(rows, FromRow)
	if messages == nil {
		messages = []Message{}
	}

	return messages, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// CreateMessage accepts a public contact-form submission. Submissions need
// somewhere to land, so they are refused outright in fallback mode.
func (service *Service) CreateMessage(context context.Context, message *Message) error {
	if service.repo == nil {
		return apperr.NotConfigured("Message store is not configured; the contact form is disabled")
	}

	if err := validateMessage(message); err != nil {
		return err
	}

	message.ID = uuidv7.New()
	message.Read = false

	row := ToRow(*message)
	if err := service.repo.Create(context, &row); err != nil {
		return err
	}

	*message = FromRow(row)
	service.logger.Info("contact_message_received", slog.String("message_id", message.ID))
	return nil
}

func (service *Service) MarkRead(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Message store is not configured; mutations are disabled")
	}

	return service.repo.MarkRead(context, id)
}

// MarkAllRead marks every unread message, one by one. A failure on one
// message does not stop the sweep; the ids that could not be marked are
// reported back to the caller.
func (service *Service) MarkAllRead(context context.Context) (BulkReadResult, error) {
	if service.repo == nil {
		return BulkReadResult{}, apperr.NotConfigured("Message store is not configured; mutations are disabled")
	}

	ids, err := service.repo.UnreadIDs(context)
	if err != nil {
		return BulkReadResult{}, err
	}

	var result BulkReadResult
	for _, id := range ids {
		if err := service.repo.MarkRead(context, id); err != nil {
			service.logger.Error("mark_read_failed", slog.String("message_id", id), slog.Any("error", err))
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.Marked++
	}

	return result, nil
}

func (service *Service) DeleteMessage(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Message store is not configured; mutations are disabled")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("contact_message_deleted", slog.String("message_id", id))
	return nil
}

func validateMessage(message *Message) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, message.Name).MaxLen(FieldName, message.Name, 120).
		Required(FieldEmail, message.Email).Email(FieldEmail, message.Email).
		MaxLen(FieldSubject, message.Subject, 200).
		Required(FieldMessage, message.Message).MaxLen(FieldMessage, message.Message, 5000)

	return validator.Err()
}
