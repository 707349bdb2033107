package handler

import (
	"fmt"
	"net/http"

	"github.com/quillpost/quillpost/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "quillpost_signups_total %d\n", snap.Signups)
	writeMetric(w, "quillpost_logins_total %d\n", snap.Logins)
	writeMetric(w, "quillpost_auth_failures_total %d\n", snap.AuthFailures)

	writeMetric(w, "quillpost_posts_created_total %d\n", snap.PostsCreated)
	writeMetric(w, "quillpost_posts_updated_total %d\n", snap.PostsUpdated)
	writeMetric(w, "quillpost_posts_deleted_total %d\n", snap.PostsDeleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
