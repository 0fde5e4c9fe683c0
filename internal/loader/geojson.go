package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Boundaries holds the district boundary polygons. The geometry is opaque
// to the filter core; only the presentation layer consumes it.
type Boundaries struct {
	Collection *geojson.FeatureCollection
	Districts  []string
}

// boundaryNameKeys are the property keys checked, in order, for a feature's
// district name. Boundary files from different sources disagree on the key.
var boundaryNameKeys = []string{"DISTRICT", "District", "district", "DIST_EN", "NAME", "name"}

// LoadBoundaries reads district boundary geometry from a GeoJSON file, or
// from a shapefile when the path ends in .shp.
func LoadBoundaries(path string) (*Boundaries, error) {
	if strings.EqualFold(filepath.Ext(path), ".shp") {
		return loadBoundariesShapefile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: read boundary geojson")
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrap(err, "loader: parse boundary geojson")
	}
	if len(fc.Features) == 0 {
		return nil, eris.New("loader: boundary file has no features")
	}

	b := &Boundaries{Collection: &fc}
	for _, feat := range fc.Features {
		if name := featureDistrict(feat.Properties); name != "" {
			b.Districts = append(b.Districts, name)
		}
	}

	zap.L().Info("boundary geometry loaded",
		zap.String("path", path),
		zap.Int("features", len(fc.Features)),
		zap.Int("named_districts", len(b.Districts)),
	)
	return b, nil
}

// GeoJSON marshals the boundary collection for the map base layer.
func (b *Boundaries) GeoJSON() ([]byte, error) {
	data, err := json.Marshal(b.Collection)
	if err != nil {
		return nil, eris.Wrap(err, "loader: marshal boundary geojson")
	}
	return data, nil
}

// featureDistrict extracts a district name from feature properties.
func featureDistrict(props map[string]interface{}) string {
	for _, key := range boundaryNameKeys {
		if v, ok := props[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
