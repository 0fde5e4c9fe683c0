package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return ts
}

func TestFilterParamsMatches(t *testing.T) {
	quake := Quake{
		Time:      time.Date(2017, 5, 1, 12, 0, 0, 0, time.UTC),
		Magnitude: 5.2,
		District:  "Kathmandu",
	}

	tests := []struct {
		name     string
		params   FilterParams
		expected bool
	}{
		{
			name:     "all predicates pass",
			params:   FilterParams{MinMagnitude: 5.0, Start: mustTime(t, "2015-01-01"), End: mustTime(t, "2020-01-01"), District: AllDistricts},
			expected: true,
		},
		{
			name:     "magnitude below threshold",
			params:   FilterParams{MinMagnitude: 6.0},
			expected: false,
		},
		{
			name:     "magnitude exactly at threshold passes",
			params:   FilterParams{MinMagnitude: 5.2},
			expected: true,
		},
		{
			name:     "before date range",
			params:   FilterParams{Start: mustTime(t, "2018-01-01")},
			expected: false,
		},
		{
			name:     "after date range",
			params:   FilterParams{End: mustTime(t, "2016-01-01")},
			expected: false,
		},
		{
			name:     "district mismatch",
			params:   FilterParams{District: "Pokhara"},
			expected: false,
		},
		{
			name:     "district match",
			params:   FilterParams{District: "Kathmandu"},
			expected: true,
		},
		{
			name:     "empty district treated as all",
			params:   FilterParams{},
			expected: true,
		},
		{
			name:     "zero time bounds are open ended",
			params:   FilterParams{MinMagnitude: 1.0},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Matches(quake))
		})
	}
}

func TestSummarize(t *testing.T) {
	ds := &Dataset{Quakes: []Quake{
		{Time: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Magnitude: 4.1},
		{Time: time.Date(2015, 4, 25, 0, 0, 0, 0, time.UTC), Magnitude: 7.8},
		{Time: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), Magnitude: 5.0},
	}}
	centroids := []Centroid{
		{District: "Pokhara"},
		{District: "Kathmandu"},
		{District: "Bhaktapur"},
	}

	s := Summarize(ds, centroids)

	assert.Equal(t, 3, s.QuakeCount)
	assert.InDelta(t, 4.1, s.MagnitudeMin, 0.001)
	assert.InDelta(t, 7.8, s.MagnitudeMax, 0.001)
	assert.Equal(t, time.Date(2015, 4, 25, 0, 0, 0, 0, time.UTC), s.Start)
	assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), s.End)
	assert.Equal(t, []string{"Bhaktapur", "Kathmandu", "Pokhara"}, s.Districts)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	s := Summarize(&Dataset{}, nil)
	assert.Equal(t, 0, s.QuakeCount)
	assert.Empty(t, s.Districts)
	assert.True(t, s.Start.IsZero())
}
