package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadQuakes(t *testing.T) {
	csv := `Date,Time,Latitude,Longitude,Magnitude,Depth,Place
2015-04-25,06:11:25,28.2305,84.7314,7.8,8.2,"Gorkha, Nepal"
2017-05-01,12:00:00,27.70,85.30,5.2,10.0,Kathmandu Valley
`
	path := writeTemp(t, "quakes.csv", csv)

	quakes, err := LoadQuakes(path)
	require.NoError(t, err)
	require.Len(t, quakes, 2)

	assert.Equal(t, time.Date(2015, 4, 25, 6, 11, 25, 0, time.UTC), quakes[0].Time)
	assert.InDelta(t, 28.2305, quakes[0].Latitude, 1e-9)
	assert.InDelta(t, 7.8, quakes[0].Magnitude, 1e-9)
	assert.InDelta(t, 8.2, quakes[0].DepthKM, 1e-9)
	assert.Equal(t, "Gorkha, Nepal", quakes[0].Place)
	assert.Empty(t, quakes[0].District, "district is assigned later, not at load")
}

func TestLoadQuakesSkipsMalformedRows(t *testing.T) {
	csv := `Date,Time,Latitude,Longitude,Magnitude,Depth,Place
2017-05-01,12:00:00,27.70,85.30,5.2,10.0,ok
not-a-date,,27.70,85.30,5.2,10.0,bad date
2017-05-02,,abc,85.30,5.2,10.0,bad latitude
2017-05-03,,27.70,85.30,,10.0,missing magnitude
`
	path := writeTemp(t, "quakes.csv", csv)

	quakes, err := LoadQuakes(path)
	require.NoError(t, err)
	require.Len(t, quakes, 1)
	assert.Equal(t, "ok", quakes[0].Place)
}

func TestLoadQuakesDropsOutOfBounds(t *testing.T) {
	csv := `Date,Latitude,Longitude,Magnitude
2017-05-01,27.70,85.30,5.2
2017-05-02,35.00,85.30,6.0
2017-05-03,27.70,75.00,6.0
`
	path := writeTemp(t, "quakes.csv", csv)

	quakes, err := LoadQuakes(path)
	require.NoError(t, err)
	require.Len(t, quakes, 1)
	assert.InDelta(t, 5.2, quakes[0].Magnitude, 1e-9)
}

func TestLoadQuakesDateOnlyColumn(t *testing.T) {
	csv := `Date,Latitude,Longitude,Magnitude
2018-01-01,28.21,83.99,4.1
`
	path := writeTemp(t, "quakes.csv", csv)

	quakes, err := LoadQuakes(path)
	require.NoError(t, err)
	require.Len(t, quakes, 1)
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), quakes[0].Time)
}

func TestLoadQuakesMissingRequiredColumn(t *testing.T) {
	path := writeTemp(t, "quakes.csv", "Date,Latitude,Longitude\n2017-05-01,27.7,85.3\n")

	_, err := LoadQuakes(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magnitude")
}

func TestLoadQuakesMissingFile(t *testing.T) {
	_, err := LoadQuakes(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCentroids(t *testing.T) {
	csv := `District,lat,lon
Kathmandu ,27.7172,85.3240
Pokhara,28.2096,83.9856
Broken,not-a-number,83.0
`
	path := writeTemp(t, "districts.csv", csv)

	centroids, err := LoadCentroids(path)
	require.NoError(t, err)
	require.Len(t, centroids, 2)

	assert.Equal(t, "Kathmandu", centroids[0].District, "names are trimmed")
	assert.InDelta(t, 27.7172, centroids[0].Latitude, 1e-9)
	assert.Equal(t, "Pokhara", centroids[1].District)
}

func TestLoadCentroidsAlternateHeaders(t *testing.T) {
	csv := `district,latitude,longitude
Gorkha,28.0,84.6333
`
	path := writeTemp(t, "districts.csv", csv)

	centroids, err := LoadCentroids(path)
	require.NoError(t, err)
	require.Len(t, centroids, 1)
	assert.Equal(t, "Gorkha", centroids[0].District)
}

func TestLoadCentroidsMissingDistrictColumn(t *testing.T) {
	path := writeTemp(t, "districts.csv", "name,lat,lon\nKathmandu,27.7,85.3\n")

	_, err := LoadCentroids(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "district")
}

func TestParseTimeLayouts(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"2015-04-25 06:11:25", time.Date(2015, 4, 25, 6, 11, 25, 0, time.UTC)},
		{"2015-04-25", time.Date(2015, 4, 25, 0, 0, 0, 0, time.UTC)},
		{"2015/04/25", time.Date(2015, 4, 25, 0, 0, 0, 0, time.UTC)},
		{"2015-04-25T06:11:25Z", time.Date(2015, 4, 25, 6, 11, 25, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(tt.expected), "parse %q", tt.in)
	}

	_, err := parseTime("yesterday")
	assert.Error(t, err)
}
