// Package loader reads the three input datasets: the earthquake CSV, the
// district centroid CSV, and the district boundary geometry.
package loader

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// Nepal bounding box. Records outside it are dropped at load time.
const (
	NepalLatMin = 26.5
	NepalLatMax = 30.7
	NepalLonMin = 80.2
	NepalLonMax = 88.3
)

// timeLayouts are tried in order when parsing the combined date+time value.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC3339,
}

// LoadQuakes reads the earthquake CSV. Rows with unparseable coordinates,
// magnitude, or date are skipped, as are records outside the Nepal bounding
// box; neither is fatal. Structural problems (missing file, missing
// required columns) are.
func LoadQuakes(path string) ([]model.Quake, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open quake csv")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "loader: read quake csv header")
	}
	cols := indexColumns(header)

	dateIdx, ok := cols["date"]
	if !ok {
		return nil, eris.New("loader: quake csv is missing a date column")
	}
	latIdx, ok := cols["latitude"]
	if !ok {
		return nil, eris.New("loader: quake csv is missing a latitude column")
	}
	lonIdx, ok := cols["longitude"]
	if !ok {
		return nil, eris.New("loader: quake csv is missing a longitude column")
	}
	magIdx, ok := cols["magnitude"]
	if !ok {
		return nil, eris.New("loader: quake csv is missing a magnitude column")
	}
	timeIdx, hasTime := cols["time"]
	depthIdx, hasDepth := cols["depth"]
	placeIdx, hasPlace := cols["place"]
	if !hasPlace {
		placeIdx, hasPlace = cols["location"]
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "loader: read quake csv rows")
	}

	var quakes []model.Quake
	var skipped, outOfBounds int
	for _, row := range rows {
		lat, latErr := parseFloat(field(row, latIdx))
		lon, lonErr := parseFloat(field(row, lonIdx))
		mag, magErr := parseFloat(field(row, magIdx))

		dateStr := field(row, dateIdx)
		if hasTime {
			if ts := field(row, timeIdx); ts != "" {
				dateStr = dateStr + " " + ts
			}
		}
		when, timeErr := parseTime(dateStr)

		if latErr != nil || lonErr != nil || magErr != nil || timeErr != nil {
			skipped++
			continue
		}

		if lat < NepalLatMin || lat > NepalLatMax || lon < NepalLonMin || lon > NepalLonMax {
			outOfBounds++
			continue
		}

		q := model.Quake{
			Time:      when,
			Latitude:  lat,
			Longitude: lon,
			Magnitude: mag,
		}
		if hasDepth {
			if d, err := parseFloat(field(row, depthIdx)); err == nil {
				q.DepthKM = d
			}
		}
		if hasPlace {
			q.Place = field(row, placeIdx)
		}
		quakes = append(quakes, q)
	}

	zap.L().Info("quake csv loaded",
		zap.String("path", path),
		zap.Int("records", len(quakes)),
		zap.Int("skipped", skipped),
		zap.Int("out_of_bounds", outOfBounds),
	)
	return quakes, nil
}

// LoadCentroids reads the district centroid CSV. Rows with unparseable
// coordinates are skipped; district names are trimmed.
func LoadCentroids(path string) ([]model.Centroid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open centroid csv")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "loader: read centroid csv header")
	}
	cols := indexColumns(header)

	nameIdx, ok := cols["district"]
	if !ok {
		return nil, eris.New("loader: centroid csv is missing a district column")
	}
	latIdx, ok := cols["lat"]
	if !ok {
		latIdx, ok = cols["latitude"]
	}
	if !ok {
		return nil, eris.New("loader: centroid csv is missing a latitude column")
	}
	lonIdx, ok := cols["lon"]
	if !ok {
		lonIdx, ok = cols["longitude"]
	}
	if !ok {
		return nil, eris.New("loader: centroid csv is missing a longitude column")
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "loader: read centroid csv rows")
	}

	var centroids []model.Centroid
	var skipped int
	for _, row := range rows {
		name := strings.TrimSpace(field(row, nameIdx))
		lat, latErr := parseFloat(field(row, latIdx))
		lon, lonErr := parseFloat(field(row, lonIdx))
		if name == "" || latErr != nil || lonErr != nil {
			skipped++
			continue
		}
		centroids = append(centroids, model.Centroid{District: name, Latitude: lat, Longitude: lon})
	}

	zap.L().Info("centroid csv loaded",
		zap.String("path", path),
		zap.Int("districts", len(centroids)),
		zap.Int("skipped", skipped),
	)
	return centroids, nil
}

// indexColumns maps lowercased, trimmed header names to column positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, eris.Errorf("loader: unparseable timestamp %q", s)
}
