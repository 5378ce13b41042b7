package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ingcor/backend/internal/service"
	"github.com/ingcor/backend/pkg/auth"
)

// StatsHandler serves visit tracking and the admin dashboard counters.
type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type trackRequest struct {
	Path string `json:"path"`
}

// Track handles POST /api/visits. Tracking failures are not surfaced to the
// visitor, the page view just goes uncounted.
func (h *StatsHandler) Track(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	p := strings.TrimSpace(req.Path)
	if p == "" || !strings.HasPrefix(p, "/") {
		p = "/"
	}
	if len(p) > 200 {
		p = p[:200]
	}

	if err := h.statsService.Track(r.Context(), p); err != nil {
		slog.Warn("visit tracking failed", "error", err, "path", p)
	}
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Dashboard handles GET /api/admin/stats.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	stats, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		slog.Error("dashboard stats failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "stats_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
