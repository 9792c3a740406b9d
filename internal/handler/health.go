package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// healthTimeout bounds the store ping so a hung backend fails the check
// instead of hanging it.
const healthTimeout = 3 * time.Second

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Health handles GET /api/health. The ping error is logged, not returned,
// since the endpoint is public.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Error("health check: store ping failed", "store", h.backend, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Store: h.backend})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Store: h.backend})
}
