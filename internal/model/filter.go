package model

import "time"

// AllDistricts is the district filter sentinel meaning "do not filter by
// district".
const AllDistricts = "All"

// FilterParams holds the three widget values that drive recomputation.
// A zero District is treated the same as AllDistricts.
type FilterParams struct {
	MinMagnitude float64   `json:"min_magnitude"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	District     string    `json:"district"`
}

// Matches reports whether a quake satisfies the conjunction of all active
// predicates: magnitude threshold, inclusive date range, and district.
func (p FilterParams) Matches(q Quake) bool {
	if q.Magnitude < p.MinMagnitude {
		return false
	}
	if !p.Start.IsZero() && q.Time.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && q.Time.After(p.End) {
		return false
	}
	if p.District != "" && p.District != AllDistricts && q.District != p.District {
		return false
	}
	return true
}
