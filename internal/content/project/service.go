// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/longpd/folio/internal/content/fallback"
	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/validate"
	"github.com/longpd/folio/pkg/collate"
	"github.com/longpd/folio/pkg/uuidv7"
)

// nowYearMonth is swappable in tests so the latest-first sort stays
// deterministic.
var nowYearMonth = func() collate.YearMonth {
	now := time.Now()
	return collate.YearMonth{Month: collate.Months[now.Month()-1], Year: now.Year()}
}

type Service struct {
	repo   Repository // nil when the store is unconfigured
	static []Row
	logger *slog.Logger
}

// NewService wires the project use cases. Pass a nil repository to run in
// static fallback mode.
func NewService(repo Repository, static []Row, logger *slog.Logger) *Service {
	return &Service{repo: repo, static: static, logger: logger}
}

// ListProjects returns projects filtered by category and sorted
// latest-first. The "all" selector (or empty string) bypasses filtering.
func (service *Service) ListProjects(ctx context.Context, category string) ([]Project, error) {
	var query func(context.Context) ([]Row, error)
	if service.repo != nil {
		query = service.repo.ListProjects
	}

	projects, err := fallback.Fetch(ctx, service.logger, query, service.static, FromRow, true)
	if err != nil {
		return nil, err
	}

	projects = collate.FilterByCategory(projects, category, func(p Project) []string {
		return p.Categories
	})

	sortLatestFirst(projects)
	return projects, nil
}

// GetProject resolves a single project by ID, searching the static snapshot
// when the store is unconfigured.
func (service *Service) GetProject(context context.Context, id string) (*Project, error) {
	if service.repo == nil {
		for _, row := range service.static {
			if row.ID == id {
				p := FromRow(row)
				return &p, nil
			}
		}
		return nil, apperr.NotFound("Project")
	}

	row, err := service.repo.GetProject(context, id)
	if err != nil {
		return nil, err
	}

	p := FromRow(row)
	return &p, nil
}

// CreateProject validates and persists a new project.
func (service *Service) CreateProject(context context.Context, p *Project) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := validateProject(p); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuidv7.New()
	}

	row := ToRow(*p)
	if err := service.repo.CreateProject(context, &row); err != nil {
		return err
	}

	*p = FromRow(row)
	service.logger.Info("project_created", slog.String("project_id", p.ID), slog.String("title", p.Title))
	return nil
}

// UpdateProject validates and replaces an existing project.
func (service *Service) UpdateProject(context context.Context, id string, p *Project) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	p.ID = id
	if err := validateProject(p); err != nil {
		return err
	}

	row := ToRow(*p)
	if err := service.repo.UpdateProject(context, &row); err != nil {
		return err
	}

	*p = FromRow(row)
	service.logger.Info("project_updated", slog.String("project_id", id))
	return nil
}

// DeleteProject removes a project by ID.
func (service *Service) DeleteProject(context context.Context, id string) error {
	if service.repo == nil {
		return apperr.NotConfigured("Content store is not configured; mutations are disabled")
	}

	if err := service.repo.DeleteProject(context, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return nil
}

// validateProject applies the write-path rules shared by create and update.
func validateProject(p *Project) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, p.Title).MaxLen(FieldTitle, p.Title, 200).
		Required(FieldDescription, p.Description).
		Required(FieldImage, p.Image).
		Custom(FieldStartDate, collate.MonthIndex(p.StartDate.Month) < 0, "Must be a full English month name").
		Custom(FieldStartDate, p.StartDate.Year < 1900, "Year must be plausible")

	if p.Link != nil {
		validator.URL(FieldLink, *p.Link)
	}
	if p.GithubLink != nil {
		validator.URL(FieldGithubLink, *p.GithubLink)
	}
	if p.LiveLink != nil {
		validator.URL(FieldLiveLink, *p.LiveLink)
	}

	return validator.Err()
}

// sortLatestFirst orders projects by their effective end point: ongoing
// projects sort as "now", completed ones by end date, falling back to the
// start date. Ties keep source order (stable sort).
func sortLatestFirst(projects []Project) {
	now := nowYearMonth()
	collate.SortByDateDesc(projects, func(p Project) collate.YearMonth {
		return effectiveEnd(p, now)
	})
}

func effectiveEnd(p Project, now collate.YearMonth) collate.YearMonth {
	if p.IsOngoing {
		return now
	}
	if p.EndDate != nil {
		return *p.EndDate
	}
	return p.StartDate
}
