// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package gallery implements the photo gallery collections.

Images belong to one of three named collections (home, main, moments) and
may carry an optional month/year date. The public site renders the main
collection grouped by year and the moments collection as a masonry wall.
*/
package gallery

import (
	"time"

	"github.com/longpd/folio/pkg/collate"
)

// Collection is the gallery discriminator enumeration.
type Collection string

const (
	CollectionHome    Collection = "home"
	CollectionMain    Collection = "main"
	CollectionMoments Collection = "moments"
)

// Collections lists every valid collection, used for validation.
var Collections = []string{
	string(CollectionHome), string(CollectionMain), string(CollectionMoments),
}

// Image is the view-model shape consumed by display code.
//
// Static snapshot entries carry no identity; their ID is empty and they are
// read-only by construction.
type Image struct {
	ID         string             `json:"id,omitempty"`
	URL        string             `json:"url"`
	Caption    string             `json:"caption"`
	Collection Collection         `json:"collection"`
	Date       *collate.YearMonth `json:"date,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Row is the flat record shape stored by the relational store and the
// static snapshot.
type Row struct {
	ID         string
	URL        string
	Caption    string
	Collection string
	Month      *string
	Year       *int
	CreatedAt  time.Time
}

const (
	FieldURL        = "url"
	FieldCaption    = "caption"
	FieldCollection = "collection"
)

// FromRow maps a flat row into the view model. Month and year must both be
// present for a date to exist; a half-filled pair is treated as dateless.
func FromRow(row Row) Image {
	img := Image{
		ID:         row.ID,
		URL:        row.URL,
		Caption:    row.Caption,
		Collection: Collection(row.Collection),
		CreatedAt:  row.CreatedAt,
	}

	if row.Month != nil && row.Year != nil {
		img.Date = &collate.YearMonth{Month: *row.Month, Year: *row.Year}
	}

	return img
}

// ToRow maps a view model back into the flat row shape for writes.
func ToRow(img Image) Row {
	row := Row{
		ID:         img.ID,
		URL:        img.URL,
		Caption:    img.Caption,
		Collection: string(img.Collection),
		CreatedAt:  img.CreatedAt,
	}

	if img.Date != nil {
		row.Month = &img.Date.Month
		row.Year = &img.Date.Year
	}

	return row
}
