// Package explore implements the filter and aggregation core of the
// dashboard: pure functions from the immutable master dataset plus the
// current widget values to freshly built derived views.
package explore

import "github.com/quakewatch/quake-explorer/internal/model"

// Filter returns the subset of the dataset satisfying every active
// predicate, preserving original order. The result is a fresh slice each
// call; the dataset is never mutated. An empty result is a normal outcome.
func Filter(ds *model.Dataset, params model.FilterParams) []model.Quake {
	view := make([]model.Quake, 0, ds.Len())
	for _, q := range ds.Quakes {
		if params.Matches(q) {
			view = append(view, q)
		}
	}
	return view
}
