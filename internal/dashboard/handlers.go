package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/explore"
	"github.com/quakewatch/quake-explorer/internal/model"
)

// quakesResponse carries both derived views in a single payload so the map
// and the bar chart always update together from one consistent snapshot.
type quakesResponse struct {
	Params model.FilterParams    `json:"params"`
	Total  int                   `json:"total"`
	Quakes []model.Quake         `json:"quakes"`
	Counts []model.DistrictCount `json:"counts"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.summary)
}

func (s *Server) handleBoundaries(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(s.boundaries)
}

// handleQuakes is the widget-change entry point: every filter control on
// the page funnels into this one handler regardless of which widget fired.
func (s *Server) handleQuakes(w http.ResponseWriter, r *http.Request) {
	params, err := parseFilterParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	start := time.Now()
	view, counts := explore.Recompute(s.dataset, params, s.topN)
	s.metrics.RecomputeTotal.Inc()
	s.metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	s.metrics.FilteredViewSize.Observe(float64(len(view)))

	writeJSON(w, http.StatusOK, quakesResponse{
		Params: params,
		Total:  len(view),
		Quakes: view,
		Counts: counts,
	})
}

// parseFilterParams reads the three widget values from the query string.
// Absent parameters leave their predicate inactive.
func parseFilterParams(r *http.Request) (model.FilterParams, error) {
	q := r.URL.Query()
	params := model.FilterParams{District: model.AllDistricts}

	if v := q.Get("min_mag"); v != "" {
		mag, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, errBadParam("min_mag", v)
		}
		params.MinMagnitude = mag
	}
	if v := q.Get("start"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return params, errBadParam("start", v)
		}
		params.Start = t
	}
	if v := q.Get("end"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return params, errBadParam("end", v)
		}
		// End is inclusive of the whole day when given as a bare date.
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		params.End = t
	}
	if v := q.Get("district"); v != "" {
		params.District = v
	}

	return params, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

type paramError struct {
	name, value string
}

func (e paramError) Error() string {
	return "invalid " + e.name + " value " + strconv.Quote(e.value)
}

func errBadParam(name, value string) error {
	return paramError{name: name, value: value}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("dashboard: encode response", zap.Error(err))
	}
}
