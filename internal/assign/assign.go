// Package assign labels earthquake records with their nearest district.
package assign

import (
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// Districts assigns each quake the district of its nearest centroid and
// mutates the dataset in place. It runs exactly once at startup; the
// dataset is treated as immutable afterwards.
//
// Distance is planar squared distance on degree coordinates with the
// longitude delta scaled by cos(latitude) so east-west separation is not
// over-weighted at Nepal's latitudes. This is intentionally not geodesic;
// the distortion is bounded at single-country scale. Ties are broken by
// first occurrence in the centroid list so results are reproducible.
func Districts(ds *model.Dataset, centroids []model.Centroid) error {
	if len(centroids) == 0 {
		return eris.New("assign: centroid table is empty")
	}

	for i := range ds.Quakes {
		q := &ds.Quakes[i]
		q.District = nearest(q.Latitude, q.Longitude, centroids)
	}

	zap.L().Info("district assignment complete",
		zap.Int("quakes", ds.Len()),
		zap.Int("districts", len(centroids)),
	)
	return nil
}

// nearest returns the district of the centroid minimizing the scaled planar
// squared distance to (lat, lon). Strict less-than keeps the first of any
// exactly equidistant centroids.
func nearest(lat, lon float64, centroids []model.Centroid) string {
	lonScale := math.Cos(lat * math.Pi / 180)

	best := 0
	bestDist := math.Inf(1)
	for j, c := range centroids {
		dLat := c.Latitude - lat
		dLon := (c.Longitude - lon) * lonScale
		d := dLat*dLat + dLon*dLon
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return centroids[best].District
}
