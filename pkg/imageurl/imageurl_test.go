// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package imageurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/longpd/folio/pkg/imageurl"
)

func TestTransform_InjectsSegment(t *testing.T) {
	url := "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/hero.jpg"

	got := imageurl.Transform(url, imageurl.Options{Width: 800})
	assert.Equal(t,
		"https://res.cloudinary.com/folio/image/upload/f_auto,q_auto,w_800/v1741000000/gallery/hero.jpg",
		got)
}

func TestTransform_DefaultsToAutoFormatAndQuality(t *testing.T) {
	url := "https://res.cloudinary.com/folio/image/upload/v1/pic.png"

	got := imageurl.Transform(url, imageurl.Options{})
	assert.Equal(t, "https://res.cloudinary.com/folio/image/upload/f_auto,q_auto/v1/pic.png", got)
}

func TestTransform_WidthAndHeight(t *testing.T) {
	url := "https://res.cloudinary.com/folio/image/upload/v1/pic.png"

	got := imageurl.Transform(url, imageurl.Options{Width: 400, Height: 300})
	assert.Contains(t, got, "/upload/f_auto,q_auto,w_400,h_300/")
}

// A second pass replaces the existing segment instead of stacking one.
func TestTransform_ReplacesExistingSegment(t *testing.T) {
	url := "https://res.cloudinary.com/folio/image/upload/w_100,h_100/v1/pic.png"

	got := imageurl.Transform(url, imageurl.Options{Width: 800})
	assert.Equal(t, "https://res.cloudinary.com/folio/image/upload/f_auto,q_auto,w_800/v1/pic.png", got)
}

func TestTransform_NonMatchingURLsUnchanged(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"other_host", "https://images.example.com/upload/pic.png"},
		{"cloudinary_without_upload", "https://res.cloudinary.com/folio/raw/fetch/pic.png"},
		{"arbitrary_string", "not-a-url-at-all"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.url, imageurl.Transform(tt.url, imageurl.Options{Width: 500}))
		})
	}
}

func TestTransform_FolderNotMistakenForSegment(t *testing.T) {
	// "gallery" carries no transformation prefix, so it must be preserved.
	url := "https://res.cloudinary.com/folio/image/upload/gallery/pic.png"

	got := imageurl.Transform(url, imageurl.Options{})
	assert.Equal(t, "https://res.cloudinary.com/folio/image/upload/f_auto,q_auto/gallery/pic.png", got)
}
