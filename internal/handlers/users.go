package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"linkstash/internal/db"
	"linkstash/internal/models"
	"linkstash/internal/validation"
)

// UserHandler handles user directory lookups.
type UserHandler struct {
	db *db.DB
}

// NewUserHandler creates a new user handler.
func NewUserHandler(database *db.DB) *UserHandler {
	return &UserHandler{db: database}
}

// Me returns the caller's own user record.
func (h *UserHandler) Me(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return jsonSuccess(c, user)
}

// Search performs a case-insensitive substring match against usernames
// and emails, used to populate the share-grant creation flow.
func (h *UserHandler) Search(c fiber.Ctx) error {
	term := c.Query("q")

	if valid, msg := validation.ValidateSearchTerm(term); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	users, err := h.db.SearchUsers(c.Context(), term, 50)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to search users")
	}

	return jsonSuccess(c, users)
}

// GetByEmail returns the user record for an exact email match.
func (h *UserHandler) GetByEmail(c fiber.Ctx) error {
	userEmail := c.Params("email")

	user, err := h.db.GetUserByEmail(c.Context(), userEmail)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	return jsonSuccess(c, user)
}
