package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/dashboard"
	"github.com/quakewatch/quake-explorer/internal/loader"
	"github.com/quakewatch/quake-explorer/internal/metrics"
	"github.com/quakewatch/quake-explorer/internal/model"
	"github.com/quakewatch/quake-explorer/internal/store"
)

var (
	servePort     int
	serveSnapshot bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var (
			ds         *model.Dataset
			centroids  []model.Centroid
			boundaries *loader.Boundaries
			err        error
		)
		if serveSnapshot {
			ds, centroids, boundaries, err = loadFromSnapshot(cmd)
		} else {
			ds, centroids, boundaries, err = loadInputs(ctx)
		}
		if err != nil {
			return err
		}

		opts := dashboard.Options{
			TopN:           cfg.Dashboard.TopN,
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
		}
		srv, err := dashboard.New(ds, centroids, boundaries, metrics.New(), opts)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: srv.Router(opts),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			httpSrv.Shutdown(ctx)
		}()

		zap.L().Info("starting dashboard", zap.Int("port", port), zap.Int("quakes", ds.Len()))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// loadFromSnapshot restores the assigned records from the snapshot database.
// Centroids and boundaries are small, so those still come from the files.
func loadFromSnapshot(cmd *cobra.Command) (*model.Dataset, []model.Centroid, *loader.Boundaries, error) {
	st, err := store.NewSQLite(cfg.Snapshot.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer st.Close()

	quakes, snap, err := st.LoadLatest(cmd.Context())
	if err != nil {
		return nil, nil, nil, err
	}

	centroids, err := loader.LoadCentroids(cfg.Data.DistrictsCSV)
	if err != nil {
		return nil, nil, nil, err
	}
	boundaries, err := loader.LoadBoundaries(cfg.Data.Boundaries)
	if err != nil {
		return nil, nil, nil, err
	}

	zap.L().Info("snapshot restored",
		zap.String("snapshot_id", snap.ID),
		zap.Int("quakes", len(quakes)),
		zap.Time("created_at", snap.CreatedAt),
	)
	return &model.Dataset{Quakes: quakes}, centroids, boundaries, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveSnapshot, "snapshot", false, "restore the dataset from the snapshot database instead of re-parsing the CSV")
	rootCmd.AddCommand(serveCmd)
}
