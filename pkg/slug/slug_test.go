// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/longpd/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Building a Portfolio API", "building-a-portfolio-api"},
		{"accents_stripped", "Café métier", "cafe-metier"},
		{"punctuation_collapsed", "Go 1.24: What's New?!", "go-1-24-what-s-new"},
		{"leading_trailing_trimmed", "  spaced out  ", "spaced-out"},
		{"multiple_hyphens_collapsed", "a --- b", "a-b"},
		{"already_slugged", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
