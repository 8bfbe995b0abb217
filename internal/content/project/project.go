// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package project implements the portfolio project catalogue.

A project is read-only on the public site and fully managed through the
admin panel. The package follows the standard entity layout: view model and
row shape here, transforms in transform.go, business rules in service.go,
storage contracts in store.go, and the chi handlers in http.go.
*/
package project

import (
	"time"

	"github.com/longpd/folio/pkg/collate"
)

// # View Model

// Testimonial is the optional quote attached to a project.
//
// It exists as a whole or not at all: the row transform collapses the flat
// testimonial_* columns into this struct only when a quote is present.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position,omitempty"`
	Company  string `json:"company,omitempty"`
}

// Project is the view-model shape consumed by display code.
//
// Absent values are nil pointers and omitted from JSON — the view model
// never represents "no value" as null.
type Project struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	LongDescription *string            `json:"long_description,omitempty"`
	Event           *string            `json:"event,omitempty"`
	StartDate       collate.YearMonth  `json:"start_date"`
	EndDate         *collate.YearMonth `json:"end_date,omitempty"`
	IsOngoing       bool               `json:"is_ongoing"`
	Image           string             `json:"image"`
	Images          []string           `json:"images,omitempty"`
	Tags            []string           `json:"tags"`
	Skills          []string           `json:"skills"`
	Categories      []string           `json:"categories"`
	IsFeatured      bool               `json:"is_featured"`
	Link            *string            `json:"link,omitempty"`
	GithubLink      *string            `json:"github_link,omitempty"`
	LiveLink        *string            `json:"live_link,omitempty"`
	TeamSize        *int               `json:"team_size,omitempty"`
	Role            *string            `json:"role,omitempty"`
	Achievements    []string           `json:"achievements,omitempty"`
	Testimonial     *Testimonial       `json:"testimonial,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// # Row Shape

// Row is the flat record shape as stored by the relational store and the
// static snapshot. Dates are flat month/year columns; the testimonial is
// four nullable columns.
type Row struct {
	ID              string
	Title           string
	Description     string
	LongDescription *string
	Event           *string
	StartMonth      string
	StartYear       int
	EndMonth        *string
	EndYear         *int
	IsOngoing       bool
	Image           string
	Images          []string
	Tags            []string
	Skills          []string
	Categories      []string
	// Category is the legacy scalar used by older static snapshot entries.
	// The transform coerces it into a one-element Categories list.
	Category            string
	IsFeatured          bool
	Link                *string
	GithubLink          *string
	LiveLink            *string
	TeamSize            *int
	Role                *string
	Achievements        []string
	TestimonialQuote    *string
	TestimonialAuthor   *string
	TestimonialPosition *string
	TestimonialCompany  *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStartDate   = "start_date"
	FieldImage       = "image"
	FieldLink        = "link"
	FieldGithubLink  = "github_link"
	FieldLiveLink    = "live_link"
)
