package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakewatch/quake-explorer/internal/model"
)

func viewOf(districts ...string) []model.Quake {
	view := make([]model.Quake, len(districts))
	for i, d := range districts {
		view[i] = model.Quake{District: d}
	}
	return view
}

func TestCountByDistrict(t *testing.T) {
	view := viewOf("Kathmandu", "Pokhara", "Kathmandu", "Gorkha", "Kathmandu")

	table := CountByDistrict(view)

	require.Len(t, table, 3)
	// First-appearance order.
	assert.Equal(t, model.DistrictCount{District: "Kathmandu", Count: 3}, table[0])
	assert.Equal(t, model.DistrictCount{District: "Pokhara", Count: 1}, table[1])
	assert.Equal(t, model.DistrictCount{District: "Gorkha", Count: 1}, table[2])
}

func TestCountByDistrictSumProperty(t *testing.T) {
	view := viewOf("A", "B", "A", "C", "B", "A", "D", "D", "D", "D")

	table := CountByDistrict(view)

	sum := 0
	for _, row := range table {
		sum += row.Count
	}
	assert.Equal(t, len(view), sum)
}

func TestCountByDistrictEmptyView(t *testing.T) {
	table := CountByDistrict(nil)
	assert.Empty(t, table)
}

func TestTopNTruncates(t *testing.T) {
	table := []model.DistrictCount{
		{District: "A", Count: 1},
		{District: "B", Count: 5},
		{District: "C", Count: 3},
		{District: "D", Count: 4},
	}

	top := TopN(table, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].District)
	assert.Equal(t, "D", top[1].District)
	// Input untouched.
	assert.Equal(t, "A", table[0].District)
}

func TestTopNStableOnTies(t *testing.T) {
	table := []model.DistrictCount{
		{District: "First", Count: 2},
		{District: "Second", Count: 2},
		{District: "Third", Count: 2},
	}

	top := TopN(table, 3)

	assert.Equal(t, "First", top[0].District)
	assert.Equal(t, "Second", top[1].District)
	assert.Equal(t, "Third", top[2].District)
}

func TestTopNDefaultLimit(t *testing.T) {
	table := make([]model.DistrictCount, 20)
	for i := range table {
		table[i] = model.DistrictCount{District: string(rune('A' + i)), Count: 20 - i}
	}

	top := TopN(table, 0)

	assert.Len(t, top, DefaultTopN)
	assert.Equal(t, 20, top[0].Count)
}

func TestRecomputeExampleScenarios(t *testing.T) {
	ds := sampleDataset()

	t.Run("threshold 5.0 keeps Kathmandu only", func(t *testing.T) {
		view, table := Recompute(ds, model.FilterParams{
			MinMagnitude: 5.0,
			Start:        date(2015, 1, 1),
			End:          date(2020, 1, 1),
			District:     model.AllDistricts,
		}, 0)

		require.Len(t, view, 1)
		require.Len(t, table, 1)
		assert.Equal(t, model.DistrictCount{District: "Kathmandu", Count: 1}, table[0])
	})

	t.Run("threshold 6.0 yields empty views, not an error", func(t *testing.T) {
		view, table := Recompute(ds, model.FilterParams{MinMagnitude: 6.0}, 0)
		assert.Empty(t, view)
		assert.Empty(t, table)
	})

	t.Run("district Pokhara with zero threshold", func(t *testing.T) {
		view, table := Recompute(ds, model.FilterParams{District: "Pokhara"}, 0)
		require.Len(t, view, 1)
		require.Len(t, table, 1)
		assert.Equal(t, model.DistrictCount{District: "Pokhara", Count: 1}, table[0])
	})
}

func TestRecomputeIdempotent(t *testing.T) {
	ds := sampleDataset()
	params := model.FilterParams{MinMagnitude: 4.0, District: model.AllDistricts}

	view1, table1 := Recompute(ds, params, 15)
	view2, table2 := Recompute(ds, params, 15)

	assert.Equal(t, view1, view2)
	assert.Equal(t, table1, table2)
}
