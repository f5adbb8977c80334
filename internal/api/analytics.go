package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/httputil"
	"github.com/quotable/leadintel/internal/storage"
)

// Dashboard returns the headline analytics.
//
//	GET /api/analytics/dashboard
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.analyzer.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, d)
}

// asyncSweepTimeout bounds a sweep started by an async refresh.
const asyncSweepTimeout = 5 * time.Minute

// Optimizations returns the cached report. On a cache miss it loads the
// newest archived report, and only runs a sweep when there is none.
//
//	GET /api/optimizations
func (h *Handlers) Optimizations(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Latest()
	if errors.Is(err, analytics.ErrNoReport) {
		report, err = h.archivedReport(r.Context())
	}
	if errors.Is(err, analytics.ErrNoReport) && h.refresher != nil {
		report, err = h.refresher.RunOnce(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, report)
}

// archivedReport loads the newest archived report into the cache so
// apply and dismiss work on it. It returns ErrNoReport when nothing is
// archived or the archive is unreachable.
func (h *Handlers) archivedReport(ctx context.Context) (*domain.OptimizationReport, error) {
	if h.archive == nil {
		return nil, analytics.ErrNoReport
	}
	var report domain.OptimizationReport
	key, err := storage.LatestReport(ctx, h.archive, storage.KindOptimization, &report)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return nil, analytics.ErrNoReport
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		log.Printf("[api] optimization archive lookup failed: %v", err)
		return nil, analytics.ErrNoReport
	}
	log.Printf("[api] serving archived optimization report %s", key)
	h.reports.Store(&report)
	return h.reports.Latest()
}

// RefreshOptimizations forces a sweep. With ?async=true the sweep runs in
// the background and the request returns 202 at once.
//
//	POST /api/optimizations/refresh
func (h *Handlers) RefreshOptimizations(w http.ResponseWriter, r *http.Request) {
	if h.refresher == nil {
		httputil.ServiceUnavailable(w, "optimization sweeps are not configured")
		return
	}
	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), asyncSweepTimeout)
		h.background.Add(1)
		go func() {
			defer h.background.Done()
			defer cancel()
			if _, err := h.refresher.RunOnce(ctx); err != nil {
				log.Printf("[api] background sweep failed: %v", err)
			}
		}()
		httputil.Accepted(w, map[string]string{"status": "sweep started"})
		return
	}
	report, err := h.refresher.RunOnce(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, report)
}

// ApplyRecommendation marks a recommendation applied.
//
//	POST /api/optimizations/{id}/apply
func (h *Handlers) ApplyRecommendation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.reports.Apply(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.OK(w, rec)
}

// DismissRecommendation drops a recommendation from the cached report.
//
//	DELETE /api/optimizations/{id}
func (h *Handlers) DismissRecommendation(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.Dismiss(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	httputil.NoContent(w)
}
