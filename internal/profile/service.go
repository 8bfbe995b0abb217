// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile

import (
	"context"
	"log/slog"
	"slices"

	"github.com/longpd/folio/internal/content/fallback"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/validate"
	"github.com/longpd/folio/pkg/uuidv7"
)

type Service struct {
	repo   Repository // nil when the store is unconfigured
	static map[Section][]Row
	logger *slog.Logger
}

func NewService(repo Repository, static map[Section][]Row, logger *slog.Logger) *Service {
	return &Service{repo: repo, static: static, logger: logger}
}

// ListSection returns one section's entries sorted for display (sort order
// ascending, stable).
func (service *Service) ListSection(ctx context.Context, section Section) ([]Entry, error) {
	if err := validateSection(section); err != nil {
		return nil, err
	}

	var query func(context.Context) ([]Row, error)
	if service.repo != nil {
		query = func(ctx context.Context) ([]Row, error) {
			return service.repo.ListEntries(ctx, section)
		}
	}

	entries, err := fallback.Fetch(ctx, service.logger, query, service.static[section], FromRow, true)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.SortOrder - b.SortOrder
	})

	return entries, nil
}

// GetProfile assembles every section into the aggregate payload the public
// site renders in one fetch.
func (service *Service) GetProfile(context context.Context) (Profile, error) {
	var profile Profile

	for _, section := range Sections {
		entries, err := service.ListSection(context, section)
		if err != nil {
			return Profile{}, err
		}

		switch section {
		case SectionExperience:
			profile.Experience = entries
		case SectionSkill:
			profile.Skills = entries
		case SectionEducation:
			profile.Education = entries
		case SectionCertification:
			profile.Certifications = entries
		case SectionLeadership:
			profile.Leadership = entries
		}
	}

	return profile, nil
}

func (service *Service) CreateEntry(context context.Context, section Section, entry *Entry) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateEntry(section, entry); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuidv7.New()
	}

	row := ToRow(*entry)
	if err := service.repo.CreateEntry(context, section, &row); err != nil {
		return err
	}

	*entry = FromRow(row)
	service.logger.Info("profile_entry_created",
		slog.String("section", string(section)), slog.String("entry_id", entry.ID))
	return nil
}

func (service *Service) UpdateEntry(context context.Context, section Section, id string, entry *Entry) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	entry.ID = id
	if err := validateEntry(section, entry); err != nil {
		return err
	}

	row := ToRow(*entry)
	if err := service.repo.UpdateEntry(context, section, &row); err != nil {
		return err
	}

	*entry = FromRow(row)
	service.logger.Info("profile_entry_updated",
		slog.String("section", string(section)), slog.String("entry_id", id))
	return nil
}

func (service *Service) DeleteEntry(context context.Context, section Section, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateSection(section); err != nil {
		return err
	}

	if err := service.repo.DeleteEntry(context, section, id); err != nil {
		return err
	}

	service.logger.Warn("profile_entry_deleted",
		slog.String("section", string(section)), slog.String("entry_id", id))
	return nil
}

func validateSection(section Section) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldSection, string(section), SectionNames...)
	return validator.Err()
}

func validateEntry(section Section, entry *Entry) error {
	validator := &validate.Validator{}
	validator.
		OneOf(FieldSection, string(section), SectionNames...).
		Required(FieldTitle, entry.Title).
		Custom(FieldSortOrder, entry.SortOrder < 0, "Must not be negative")

	return validator.Err()
}
