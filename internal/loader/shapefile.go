package loader

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// loadBoundariesShapefile reads district polygons from an ESRI shapefile
// and converts them to the same feature collection a GeoJSON file yields.
func loadBoundariesShapefile(path string) (*Boundaries, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open boundary shapefile")
	}
	defer func() { _ = reader.Close() }()

	nameIdx := -1
	for _, key := range boundaryNameKeys {
		if nameIdx = fieldIndex(reader, key); nameIdx >= 0 {
			break
		}
	}
	if nameIdx < 0 {
		return nil, eris.New("loader: no district name field found in shapefile")
	}

	b := &Boundaries{Collection: &geojson.FeatureCollection{}}
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			continue
		}

		name := strings.TrimSpace(reader.Attribute(nameIdx))
		b.Collection.Features = append(b.Collection.Features, &geojson.Feature{
			Geometry:   mp,
			Properties: map[string]interface{}{"DISTRICT": name},
		})
		if name != "" {
			b.Districts = append(b.Districts, name)
		}
	}

	if len(b.Collection.Features) == 0 {
		return nil, eris.New("loader: boundary shapefile has no polygon features")
	}

	zap.L().Info("boundary shapefile loaded",
		zap.String("path", path),
		zap.Int("features", len(b.Collection.Features)),
	)
	return b, nil
}

// fieldIndex returns the index of a named attribute field, or -1.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon.
// Each part becomes a single-ring polygon; malformed parts are skipped.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("loader: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("loader: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
