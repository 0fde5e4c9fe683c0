// Package dashboard serves the interactive explorer: an embedded
// single-page UI plus the JSON API its widgets call.
package dashboard

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quakewatch/quake-explorer/internal/loader"
	"github.com/quakewatch/quake-explorer/internal/metrics"
	"github.com/quakewatch/quake-explorer/internal/model"
)

//go:embed static/index.html
var indexHTML []byte

// Server holds the immutable dataset and serves the dashboard. The dataset
// and boundary bytes are never mutated after construction, so one Server
// may serve any number of concurrent sessions without locking.
type Server struct {
	dataset    *model.Dataset
	summary    model.Summary
	boundaries []byte
	metrics    *metrics.Metrics
	topN       int
}

// Options configures a Server.
type Options struct {
	TopN           int
	RateLimitRPS   float64
	RateLimitBurst int
}

// New builds a Server over an assigned dataset.
func New(ds *model.Dataset, centroids []model.Centroid, boundaries *loader.Boundaries, m *metrics.Metrics, opts Options) (*Server, error) {
	boundaryJSON, err := boundaries.GeoJSON()
	if err != nil {
		return nil, err
	}
	return &Server{
		dataset:    ds,
		summary:    model.Summarize(ds, centroids),
		boundaries: boundaryJSON,
		metrics:    m,
		topN:       opts.TopN,
	}, nil
}

// Router builds the HTTP handler with logging, CORS, rate limiting, and
// request metrics applied to the API routes.
func (s *Server) Router(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.requestMetrics)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", s.handleIndex)

	r.Group(func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(rateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
		}
		r.Get("/api/summary", s.handleSummary)
		r.Get("/api/quakes", s.handleQuakes)
		r.Get("/api/boundaries", s.handleBoundaries)
	})

	return r
}
