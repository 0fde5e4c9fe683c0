package explore

import "github.com/quakewatch/quake-explorer/internal/model"

// Recompute is the single entry point invoked on any widget change. It
// rebuilds both derived views wholesale so the map and the bar chart always
// update from one consistent snapshot. The count table is truncated to the
// top topN districts (DefaultTopN when topN <= 0).
//
// Recompute is pure: identical inputs yield identical outputs.
func Recompute(ds *model.Dataset, params model.FilterParams, topN int) ([]model.Quake, []model.DistrictCount) {
	view := Filter(ds, params)
	table := TopN(CountByDistrict(view), topN)
	return view, table
}
