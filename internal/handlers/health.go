package handlers

import (
	"github.com/gofiber/fiber/v3"

	"linkstash/internal/db"
)

// HealthHandler reports service health.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Check pings the database and reports readiness.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "database unavailable")
	}

	return jsonSuccess(c, fiber.Map{
		"healthy": true,
	})
}
