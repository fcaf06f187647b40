package handler

import (
	"log/slog"
	"net/http"

	"github.com/aweber/chirp/internal/domain"
)

// HealthHandler reports whether the service and its database are up.
type HealthHandler struct {
	db domain.Database
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db domain.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealthz responds 200 when the database is reachable, 503 otherwise.
// GET /healthz
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check", "error", err)
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
