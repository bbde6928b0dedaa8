package handler

import (
	"context"
	"net/http"

	"github.com/rishi-ann/redlix-portal/internal/config"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether Postgres and Redis answer.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), config.DBPingTimeout)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(ctx); err != nil {
		status["redis"] = "unavailable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, status)
}
