// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package collate provides pure ordering and grouping helpers for dated
content lists (projects, achievements, gallery images).

All functions are deterministic and perform no I/O. They exist in one place
so that every "most recent first" view across the site shares the exact same
tie-break rules instead of re-implementing them per entity.

Key Functions:
  - MonthIndex: maps an English month name to its 0-based position.
  - SortByDateDesc: stable year-desc, month-desc ordering.
  - GroupByYear: "section per year" grouping with descending year index.
  - FilterByCategory: category selection with an "all" sentinel.
  - Distribute: deterministic greedy masonry column balancing.
*/
package collate

import "sort"

// # Month Ordering

// Months defines the total order used by every chronological comparison.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the 0-based index of an English month name.
// Unknown names return -1, which sorts after every valid month.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

// YearMonth is a calendar point with month-name granularity.
type YearMonth struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// CompareDesc orders two calendar points most-recent-first.
//
// It compares year first, then month index as the tiebreak. The result is
// negative when a sorts before b, positive when after, and zero only when
// both year and month are identical.
func CompareDesc(a, b YearMonth) int {
	if a.Year != b.Year {
		return b.Year - a.Year
	}
	return MonthIndex(b.Month) - MonthIndex(a.Month)
}

// # List Sorting

// SortByDateDesc sorts items most-recent-first using [CompareDesc] on the
// extracted date. The sort is stable: items with an identical (year, month)
// keep their source order.
func SortByDateDesc[T any](items []T, date func(T) YearMonth) {
	sort.SliceStable(items, func(i, j int) bool {
		return CompareDesc(date(items[i]), date(items[j])) < 0
	})
}

// # Year Grouping

// GroupByYear partitions dated items into per-year buckets for "section per
// year" layouts.
//
// The date accessor returns ok=false for items without a date; those are
// excluded from every bucket. Within each bucket items are sorted month
// descending (stable). The returned year slice enumerates the distinct years
// present, descending, and is the iteration order for rendering.
func GroupByYear[T any](items []T, date func(T) (YearMonth, bool)) (map[int][]T, []int) {
	groups := make(map[int][]T)

	for _, item := range items {
		d, ok := date(item)
		if !ok {
			continue
		}
		groups[d.Year] = append(groups[d.Year], item)
	}

	years := make([]int, 0, len(groups))
	for year := range groups {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	for _, year := range years {
		bucket := groups[year]
		sort.SliceStable(bucket, func(i, j int) bool {
			di, _ := date(bucket[i])
			dj, _ := date(bucket[j])
			return MonthIndex(dj.Month) < MonthIndex(di.Month)
		})
	}

	return groups, years
}

// # Category Filtering

// AllCategories is the sentinel selector that bypasses category filtering.
const AllCategories = "all"

// FilterByCategory returns only items whose category list contains the
// selector. The [AllCategories] sentinel returns the input unchanged.
//
// The accessor must always return an iterable list; entities stored with a
// single scalar category are expected to coerce it into a one-element slice
// during their row transform.
func FilterByCategory[T any](items []T, selector string, categories func(T) []string) []T {
	if selector == AllCategories || selector == "" {
		return items
	}

	var result []T
	for _, item := range items {
		for _, c := range categories(item) {
			if c == selector {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

// # Masonry Distribution

// Distribute partitions items into the given number of columns, always
// appending the next item to the column with the minimum accumulated weight.
//
// This is a greedy bin-balancing heuristic, not an optimal partition: the
// maximum spread between columns is bounded by the heaviest single item.
// Given identical input and weights the output is byte-for-byte identical,
// so callers must compute per-item weights once and reuse them across
// layout passes.
//
// A column count below 1 is clamped to 1.
func Distribute[T any](items []T, columns int, weight func(T) float64) [][]T {
	if columns < 1 {
		columns = 1
	}

	result := make([][]T, columns)
	heights := make([]float64, columns)

	for _, item := range items {
		shortest := 0
		for i := 1; i < columns; i++ {
			if heights[i] < heights[shortest] {
				shortest = i
			}
		}
		result[shortest] = append(result[shortest], item)
		heights[shortest] += weight(item)
	}

	return result
}
