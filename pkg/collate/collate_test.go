// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package collate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longpd/folio/pkg/collate"
)

type dated struct {
	name string
	date collate.YearMonth
}

func ym(month string, year int) collate.YearMonth {
	return collate.YearMonth{Month: month, Year: year}
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 0, collate.MonthIndex("January"))
	assert.Equal(t, 11, collate.MonthIndex("December"))
	assert.Equal(t, -1, collate.MonthIndex("Janvier"))
	assert.Equal(t, -1, collate.MonthIndex(""))
}

func TestCompareDesc(t *testing.T) {
	tests := []struct {
		name string
		a, b collate.YearMonth
		sign int // -1: a first, 1: b first, 0: equal
	}{
		{"later_year_first", ym("January", 2025), ym("December", 2024), -1},
		{"earlier_year_last", ym("March", 2020), ym("January", 2024), 1},
		{"same_year_later_month_first", ym("November", 2024), ym("February", 2024), -1},
		{"identical", ym("June", 2023), ym("June", 2023), 0},
		{"unknown_month_sorts_last", ym("", 2024), ym("January", 2024), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collate.CompareDesc(tt.a, tt.b)
			switch tt.sign {
			case -1:
				assert.Negative(t, got)
			case 1:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortByDateDesc_StableMostRecentFirst(t *testing.T) {
	items := []dated{
		{"old", ym("May", 2020)},
		{"tie_a", ym("June", 2024)},
		{"new", ym("December", 2024)},
		{"tie_b", ym("June", 2024)},
	}

	collate.SortByDateDesc(items, func(d dated) collate.YearMonth { return d.date })

	names := []string{items[0].name, items[1].name, items[2].name, items[3].name}
	assert.Equal(t, []string{"new", "tie_a", "tie_b", "old"}, names)
}

func TestSortByDateDesc_EmptyInput(t *testing.T) {
	var items []dated
	collate.SortByDateDesc(items, func(d dated) collate.YearMonth { return d.date })
	assert.Empty(t, items)
}

func TestGroupByYear(t *testing.T) {
	items := []dated{
		{"a", ym("March", 2024)},
		{"dateless", collate.YearMonth{}},
		{"b", ym("November", 2024)},
		{"c", ym("July", 2022)},
	}

	groups, years := collate.GroupByYear(items, func(d dated) (collate.YearMonth, bool) {
		return d.date, d.date.Year != 0
	})

	// Years descend; the dateless item is in no bucket.
	assert.Equal(t, []int{2024, 2022}, years)
	require.Len(t, groups[2024], 2)
	assert.Equal(t, "b", groups[2024][0].name) // November before March
	assert.Equal(t, "a", groups[2024][1].name)
	require.Len(t, groups[2022], 1)

	total := 0
	for _, bucket := range groups {
		total += len(bucket)
	}
	assert.Equal(t, 3, total)
}

func TestGroupByYear_EmptyInput(t *testing.T) {
	groups, years := collate.GroupByYear(nil, func(d dated) (collate.YearMonth, bool) {
		return d.date, true
	})
	assert.Empty(t, groups)
	assert.Empty(t, years)
}

type tagged struct {
	name       string
	categories []string
}

func TestFilterByCategory(t *testing.T) {
	items := []tagged{
		{"route_planner", []string{"ai-ml", "hackathon"}},
		{"dashboard", []string{"iot"}},
		{"folio", []string{"web"}},
	}

	accessor := func(i tagged) []string { return i.categories }

	filtered := collate.FilterByCategory(items, "ai-ml", accessor)
	require.Len(t, filtered, 1)
	assert.Equal(t, "route_planner", filtered[0].name)

	// The sentinel and the empty selector bypass filtering entirely.
	assert.Len(t, collate.FilterByCategory(items, collate.AllCategories, accessor), 3)
	assert.Len(t, collate.FilterByCategory(items, "", accessor), 3)

	assert.Empty(t, collate.FilterByCategory(items, "mobile", accessor))
}

func TestDistribute_BalancesColumns(t *testing.T) {
	items := []float64{5, 1, 1, 1, 1, 1}

	columns := collate.Distribute(items, 2, func(w float64) float64 { return w })

	require.Len(t, columns, 2)
	// The heavy item lands alone-ish; the light ones pile into the other column.
	var weights [2]float64
	for i, col := range columns {
		for _, w := range col {
			weights[i] += w
		}
	}
	assert.Equal(t, 10.0, weights[0]+weights[1])
	// Greedy min-weight bound: spread never exceeds the heaviest single item.
	spread := weights[0] - weights[1]
	if spread < 0 {
		spread = -spread
	}
	assert.LessOrEqual(t, spread, 5.0)
}

func TestDistribute_Deterministic(t *testing.T) {
	items := []float64{1.2, 3.4, 0.5, 2.2, 1.9, 0.7}
	weight := func(w float64) float64 { return w }

	first := collate.Distribute(items, 3, weight)
	second := collate.Distribute(items, 3, weight)
	assert.Equal(t, first, second)
}

func TestDistribute_ClampsColumnCount(t *testing.T) {
	columns := collate.Distribute([]float64{1, 2}, 0, func(w float64) float64 { return w })
	require.Len(t, columns, 1)
	assert.Len(t, columns[0], 2)
}
