// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package blog implements the Markdown-backed blog posts.

Posts are addressed publicly by slug. A post is publicly visible only when
published; unpublished drafts are reachable through the admin surface. The
view count is not stored on the post row but derived from the stats
counters.
*/
package blog

import "time"

// Blog is the view-model shape consumed by display code.
type Blog struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	Author      string     `json:"author"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	ViewCount   int64      `json:"view_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Row is the flat record shape stored by the relational store.
type Row struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	CoverImage  *string
	Author      string
	Tags        []string
	Published   bool
	Featured    bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	FieldSlug    = "slug"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldAuthor  = "author"
)

// ItemType is the stats counter key segment for blog posts.
const ItemType = "blog"

// FromRow maps a flat row into the view model. The view count is attached
// separately by the service since it lives in the stats store.
func FromRow(row Row) Blog {
	b := Blog{
		ID:          row.ID,
		Slug:        row.Slug,
		Title:       row.Title,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		CoverImage:  row.CoverImage,
		Author:      row.Author,
		Tags:        row.Tags,
		Published:   row.Published,
		Featured:    row.Featured,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if b.Tags == nil {
		b.Tags = []string{}
	}

	return b
}

// ToRow maps a view model back into the flat row shape for writes.
func ToRow(b Blog) Row {
	return Row{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Content:     b.Content,
		CoverImage:  b.CoverImage,
		Author:      b.Author,
		Tags:        b.Tags,
		Published:   b.Published,
		Featured:    b.Featured,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
