package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quakewatch/quake-explorer/internal/assign"
	"github.com/quakewatch/quake-explorer/internal/loader"
	"github.com/quakewatch/quake-explorer/internal/model"
)

// loadInputs reads the three input files concurrently and assigns every
// earthquake to its nearest district centroid.
func loadInputs(ctx context.Context) (*model.Dataset, []model.Centroid, *loader.Boundaries, error) {
	var (
		quakes     []model.Quake
		centroids  []model.Centroid
		boundaries *loader.Boundaries
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quakes, err = loader.LoadQuakes(cfg.Data.QuakesCSV)
		return err
	})
	g.Go(func() error {
		var err error
		centroids, err = loader.LoadCentroids(cfg.Data.DistrictsCSV)
		return err
	})
	g.Go(func() error {
		var err error
		boundaries, err = loader.LoadBoundaries(cfg.Data.Boundaries)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	ds := &model.Dataset{Quakes: quakes}
	if err := assign.Districts(ds, centroids); err != nil {
		return nil, nil, nil, eris.Wrap(err, "load: assign districts")
	}

	zap.L().Info("inputs loaded",
		zap.Int("quakes", ds.Len()),
		zap.Int("centroids", len(centroids)),
		zap.Int("boundary_districts", len(boundaries.Districts)),
	)
	return ds, centroids, boundaries, nil
}
