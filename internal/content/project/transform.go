// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import "github.com/longpd/folio/pkg/collate"

// FromRow maps a flat row into the view model.
//
// # Rules
//
//   - Flat start/end month-year columns become nested [collate.YearMonth].
//   - An ongoing project never carries an end date, even if the columns
//     hold stale values.
//   - A legacy scalar category is coerced into a one-element list so the
//     Categories field is always iterable.
//   - The four testimonial columns collapse into one nested object only
//     when a quote is present.
func FromRow(row Row) Project {
	p := Project{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Event:           row.Event,
		StartDate:       collate.YearMonth{Month: row.StartMonth, Year: row.StartYear},
		IsOngoing:       row.IsOngoing,
		Image:           row.Image,
		Images:          row.Images,
		Tags:            emptyIfNil(row.Tags),
		Skills:          emptyIfNil(row.Skills),
		Categories:      emptyIfNil(row.Categories),
		IsFeatured:      row.IsFeatured,
		Link:            row.Link,
		GithubLink:      row.GithubLink,
		LiveLink:        row.LiveLink,
		TeamSize:        row.TeamSize,
		Role:            row.Role,
		Achievements:    row.Achievements,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if !row.IsOngoing && row.EndMonth != nil && row.EndYear != nil {
		p.EndDate = &collate.YearMonth{Month: *row.EndMonth, Year: *row.EndYear}
	}

	if len(p.Categories) == 0 && row.Category != "" {
		p.Categories = []string{row.Category}
	}

	if row.TestimonialQuote != nil && *row.TestimonialQuote != "" {
		p.Testimonial = &Testimonial{
			Quote:    *row.TestimonialQuote,
			Author:   deref(row.TestimonialAuthor),
			Position: deref(row.TestimonialPosition),
			Company:  deref(row.TestimonialCompany),
		}
	}

	return p
}

// ToRow maps a view model back into the flat row shape for writes.
func ToRow(p Project) Row {
	row := Row{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Event:           p.Event,
		StartMonth:      p.StartDate.Month,
		StartYear:       p.StartDate.Year,
		IsOngoing:       p.IsOngoing,
		Image:           p.Image,
		Images:          p.Images,
		Tags:            p.Tags,
		Skills:          p.Skills,
		Categories:      p.Categories,
		IsFeatured:      p.IsFeatured,
		Link:            p.Link,
		GithubLink:      p.GithubLink,
		LiveLink:        p.LiveLink,
		TeamSize:        p.TeamSize,
		Role:            p.Role,
		Achievements:    p.Achievements,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if !p.IsOngoing && p.EndDate != nil {
		row.EndMonth = &p.EndDate.Month
		row.EndYear = &p.EndDate.Year
	}

	if p.Testimonial != nil && p.Testimonial.Quote != "" {
		row.TestimonialQuote = &p.Testimonial.Quote
		row.TestimonialAuthor = &p.Testimonial.Author
		row.TestimonialPosition = &p.Testimonial.Position
		row.TestimonialCompany = &p.Testimonial.Company
	}

	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// emptyIfNil keeps always-iterable fields encoding as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
