package model

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Summary describes the loaded dataset for widget initialization: slider
// bounds, date picker bounds, and the district dropdown options.
type Summary struct {
	QuakeCount   int       `json:"quake_count"`
	MagnitudeMin float64   `json:"magnitude_min"`
	MagnitudeMax float64   `json:"magnitude_max"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Districts    []string  `json:"districts"`
}

// Summarize computes dataset metadata. District options come from the
// centroid table (not from the quakes) so every district is selectable even
// when it has no matching records, and are sorted with English collation.
func Summarize(ds *Dataset, centroids []Centroid) Summary {
	s := Summary{QuakeCount: ds.Len()}

	for i, q := range ds.Quakes {
		if i == 0 {
			s.MagnitudeMin, s.MagnitudeMax = q.Magnitude, q.Magnitude
			s.Start, s.End = q.Time, q.Time
			continue
		}
		if q.Magnitude < s.MagnitudeMin {
			s.MagnitudeMin = q.Magnitude
		}
		if q.Magnitude > s.MagnitudeMax {
			s.MagnitudeMax = q.Magnitude
		}
		if q.Time.Before(s.Start) {
			s.Start = q.Time
		}
		if q.Time.After(s.End) {
			s.End = q.Time
		}
	}

	s.Districts = make([]string, 0, len(centroids))
	for _, c := range centroids {
		s.Districts = append(s.Districts, c.District)
	}
	collate.New(language.English).SortStrings(s.Districts)

	return s
}
