// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package achievement implements the awards and recognitions catalogue.

Achievements are displayed grouped by year on the public site and managed
through the admin panel.
*/
package achievement

import (
	"time"

	"github.com/longpd/folio/pkg/collate"
)

// Type is the fixed achievement enumeration.
type Type string

const (
	TypeAward        Type = "award"
	TypeCertificate  Type = "certificate"
	TypeFelicitation Type = "felicitation"
	TypePublication  Type = "publication"
	TypeRecognition  Type = "recognition"
)

// Types lists every valid achievement type, used for validation.
var Types = []string{
	string(TypeAward), string(TypeCertificate), string(TypeFelicitation),
	string(TypePublication), string(TypeRecognition),
}

// Achievement is the view-model shape consumed by display code.
type Achievement struct {
	ID           string            `json:"id"`
	Type         Type              `json:"type"`
	Title        string            `json:"title"`
	Organization string            `json:"organization"`
	Description  string            `json:"description"`
	Date         collate.YearMonth `json:"date"`
	Image        string            `json:"image"`
	Link         *string           `json:"link,omitempty"`
	Tags         []string          `json:"tags"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Row is the flat record shape stored by the relational store and the
// static snapshot.
type Row struct {
	ID           string
	Type         string
	Title        string
	Organization string
	Description  string
	Month        string
	Year         int
	Image        string
	Link         *string
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	FieldType         = "type"
	FieldTitle        = "title"
	FieldOrganization = "organization"
	FieldDate         = "date"
	FieldImage        = "image"
	FieldLink         = "link"
)

// FromRow maps a flat row into the view model, folding the month/year
// columns into a nested date.
func FromRow(row Row) Achievement {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}

	return Achievement{
		ID:           row.ID,
		Type:         Type(row.Type),
		Title:        row.Title,
		Organization: row.Organization,
		Description:  row.Description,
		Date:         collate.YearMonth{Month: row.Month, Year: row.Year},
		Image:        row.Image,
		Link:         row.Link,
		Tags:         tags,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// ToRow maps a view model back into the flat row shape for writes.
func ToRow(a Achievement) Row {
	return Row{
		ID:           a.ID,
		Type:         string(a.Type),
		Title:        a.Title,
		Organization: a.Organization,
		Description:  a.Description,
		Month:        a.Date.Month,
		Year:         a.Date.Year,
		Image:        a.Image,
		Link:         a.Link,
		Tags:         a.Tags,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
