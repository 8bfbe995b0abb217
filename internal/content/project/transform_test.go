// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/internal/content/project"
	"github.com/longpd/folio/pkg/collate"
	"github.com/longpd/folio/pkg/pointer"
)

func TestFromRow_NestsDates(t *testing.T) {
	row := project.Row{
		ID:         "p1",
		Title:      "Route Planner",
		StartMonth: "March",
		StartYear:  2024,
		EndMonth:   pointer.To("August"),
		EndYear:    pointer.To(2024),
	}

	p := project.FromRow(row)

	assert.Equal(t, collate.YearMonth{Month: "March", Year: 2024}, p.StartDate)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, collate.YearMonth{Month: "August", Year: 2024}, *p.EndDate)
}

// Stale end-date columns on an ongoing project must not surface.
func TestFromRow_OngoingDropsEndDate(t *testing.T) {
	row := project.Row{
		ID:        "p1",
		IsOngoing: true,
		EndMonth:  pointer.To("August"),
		EndYear:   pointer.To(2024),
	}

	p := project.FromRow(row)

	assert.True(t, p.IsOngoing)
	assert.Nil(t, p.EndDate)
}

func TestFromRow_LegacyScalarCategoryCoerced(t *testing.T) {
	p := project.FromRow(project.Row{ID: "p1", Category: "hackathon"})
	assert.Equal(t, []string{"hackathon"}, p.Categories)

	// The list wins when both are present.
	p = project.FromRow(project.Row{ID: "p1", Category: "hackathon", Categories: []string{"web"}})
	assert.Equal(t, []string{"web"}, p.Categories)
}

func TestFromRow_IterableFieldsNeverNil(t *testing.T) {
	p := project.FromRow(project.Row{ID: "p1"})

	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Categories)
}

func TestFromRow_TestimonialCollapsesOnQuote(t *testing.T) {
	row := project.Row{
		ID:                "p1",
		TestimonialQuote:  pointer.To("Shipped on time."),
		TestimonialAuthor: pointer.To("A. Client"),
	}

	p := project.FromRow(row)

	require.NotNil(t, p.Testimonial)
	assert.Equal(t, "Shipped on time.", p.Testimonial.Quote)
	assert.Equal(t, "A. Client", p.Testimonial.Author)
	assert.Empty(t, p.Testimonial.Position)
}

func TestFromRow_NoTestimonialWithoutQuote(t *testing.T) {
	assert.Nil(t, project.FromRow(project.Row{ID: "p1"}).Testimonial)

	row := project.Row{ID: "p1", TestimonialQuote: pointer.To(""), TestimonialAuthor: pointer.To("A. Client")}
	assert.Nil(t, project.FromRow(row).Testimonial)
}

func TestRowRoundTrip(t *testing.T) {
	original := project.Row{
		ID:                "p1",
		Title:             "Route Planner",
		Description:       "Multi-stop routing",
		StartMonth:        "March",
		StartYear:         2024,
		EndMonth:          pointer.To("August"),
		EndYear:           pointer.To(2024),
		Image:             "https://cdn.folio.dev/planner.png",
		Tags:              []string{"go"},
		Skills:            []string{"pgx"},
		Categories:        []string{"web"},
		TestimonialQuote:  pointer.To("Great work"),
		TestimonialAuthor: pointer.To("A. Client"),
	}

	back := project.ToRow(project.FromRow(original))

	assert.Equal(t, original.Title, back.Title)
	assert.Equal(t, original.StartMonth, back.StartMonth)
	require.NotNil(t, back.EndMonth)
	assert.Equal(t, "August", *back.EndMonth)
	require.NotNil(t, back.TestimonialQuote)
	assert.Equal(t, "Great work", *back.TestimonialQuote)
	assert.Equal(t, original.Categories, back.Categories)
}
