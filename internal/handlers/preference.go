package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"linkstash/internal/db"
	"linkstash/internal/models"
)

// PreferenceHandler handles the per-user default-privacy preference.
type PreferenceHandler struct {
	db *db.DB
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(database *db.DB) *PreferenceHandler {
	return &PreferenceHandler{db: database}
}

// Set patches the caller's own content_default flag.
func (h *PreferenceHandler) Set(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		Content bool `json:"content"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.SetContentDefault(c.Context(), user.Email, body.Content); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update preference")
	}

	return jsonSuccess(c, fiber.Map{
		"content": body.Content,
	})
}

// Get reads the content_default flag for any user by email. The read is
// not scoped to the caller's own record.
func (h *PreferenceHandler) Get(c fiber.Ctx) error {
	userEmail := c.Params("email")

	content, err := h.db.GetContentDefault(c.Context(), userEmail)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch preference")
	}

	return jsonSuccess(c, fiber.Map{
		"content": content,
	})
}
