package explore

import (
	"sort"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// DefaultTopN is the bar chart's district limit.
const DefaultTopN = 15

// CountByDistrict groups a filtered view by district and counts records.
// Rows appear in order of each district's first occurrence in the view, and
// the counts always sum to len(view). Districts with no matching records
// are omitted entirely.
func CountByDistrict(view []model.Quake) []model.DistrictCount {
	index := make(map[string]int, 32)
	table := make([]model.DistrictCount, 0, 32)
	for _, q := range view {
		i, ok := index[q.District]
		if !ok {
			i = len(table)
			index[q.District] = i
			table = append(table, model.DistrictCount{District: q.District})
		}
		table[i].Count++
	}
	return table
}

// TopN returns the n highest-count rows, count descending. The sort is
// stable, so equal counts keep their first-appearance order from the view.
func TopN(table []model.DistrictCount, n int) []model.DistrictCount {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := make([]model.DistrictCount, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
