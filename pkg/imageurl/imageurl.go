// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package imageurl rewrites Cloudinary delivery URLs to request transformed
variants (format, quality, width) without touching the stored original.

The core treats image URLs as opaque strings; this utility only recognizes
the Cloudinary URL pattern and injects or replaces the transformation
segment that follows "/upload/". Any URL that does not match the pattern is
returned unchanged, so arbitrary third-party image links are always safe to
pass through.
*/
package imageurl

import (
	"fmt"
	"strings"
)

const uploadSegment = "/upload/"

// transformationPrefixes identify an existing transformation segment so a
// second call replaces it instead of stacking another one.
var transformationPrefixes = []string{"w_", "h_", "c_", "f_", "q_", "g_", "ar_"}

// Options selects the requested Cloudinary transformation.
//
// Zero-value fields are omitted from the generated segment. An entirely
// zero Options still requests automatic format and quality, which is the
// site-wide default for responsive delivery.
type Options struct {
	// Width in pixels. 0 leaves the width unconstrained.
	Width int
	// Height in pixels. 0 leaves the height unconstrained.
	Height int
}

// Transform rewrites a Cloudinary URL to include a transformation segment.
//
// Non-Cloudinary URLs, and Cloudinary URLs without an upload segment, are
// returned verbatim.
func Transform(rawURL string, opts Options) string {
	if !strings.Contains(rawURL, "res.cloudinary.com") {
		return rawURL
	}

	idx := strings.Index(rawURL, uploadSegment)
	if idx < 0 {
		return rawURL
	}

	prefix := rawURL[:idx+len(uploadSegment)]
	rest := rawURL[idx+len(uploadSegment):]

	// Strip an existing transformation segment before injecting ours.
	if slash := strings.Index(rest, "/"); slash > 0 && isTransformation(rest[:slash]) {
		rest = rest[slash+1:]
	}

	return prefix + segment(opts) + "/" + rest
}

// segment builds the comma-separated transformation parameters.
func segment(opts Options) string {
	parts := []string{"f_auto", "q_auto"}
	if opts.Width > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", opts.Width))
	}
	if opts.Height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", opts.Height))
	}
	return strings.Join(parts, ",")
}

// isTransformation reports whether a path segment looks like Cloudinary
// transformation parameters rather than a folder or version marker.
func isTransformation(s string) bool {
	for _, part := range strings.Split(s, ",") {
		for _, p := range transformationPrefixes {
			if strings.HasPrefix(part, p) {
				return true
			}
		}
	}
	return false
}
