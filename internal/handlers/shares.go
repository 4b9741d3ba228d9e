package handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"linkstash/internal/config"
	"linkstash/internal/db"
	"linkstash/internal/email"
	"linkstash/internal/models"
)

// ShareHandler handles share grants between users and the cross-tenant
// public-link query.
type ShareHandler struct {
	db       *db.DB
	cfg      *config.Config
	notifier *email.Notifier
}

// NewShareHandler creates a new share handler.
func NewShareHandler(database *db.DB, cfg *config.Config, notifier *email.Notifier) *ShareHandler {
	return &ShareHandler{db: database, cfg: cfg, notifier: notifier}
}

// Create grants the receiver read access to the caller's public links.
func (h *ShareHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		ReceiverEmail string `json:"receiver_email"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.ReceiverEmail == "" {
		return jsonError(c, fiber.StatusBadRequest, "sender and receiver emails are required")
	}

	grant := &models.ShareGrant{
		SenderEmail:   user.Email,
		ReceiverEmail: body.ReceiverEmail,
	}

	if err := h.db.CreateShare(c.Context(), grant); err != nil {
		if errors.Is(err, db.ErrDuplicateShare) {
			return jsonError(c, fiber.StatusConflict, "share entry already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create share")
	}

	if h.notifier != nil {
		go h.notifier.NotifyShareCreated(context.Background(), grant, user)
	}

	return jsonSuccess(c, grant)
}

// Follow is the receiver-initiated entry point: the caller requests
// access to the sender's public links. Same grant shape as Create with
// the roles swapped.
func (h *ShareHandler) Follow(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		SenderEmail string `json:"sender_email"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.SenderEmail == "" {
		return jsonError(c, fiber.StatusBadRequest, "sender and receiver emails are required")
	}

	grant := &models.ShareGrant{
		SenderEmail:   body.SenderEmail,
		ReceiverEmail: user.Email,
	}

	if err := h.db.CreateShare(c.Context(), grant); err != nil {
		if errors.Is(err, db.ErrDuplicateShare) {
			return jsonError(c, fiber.StatusConflict, "share entry already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create share")
	}

	return jsonSuccess(c, grant)
}

// Outgoing lists grants where the caller is the sender.
func (h *ShareHandler) Outgoing(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	grants, err := h.db.GetOutgoingShares(c.Context(), user.Email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch shares")
	}

	return jsonSuccess(c, grants)
}

// Incoming lists grants where the caller is the receiver.
func (h *ShareHandler) Incoming(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	grants, err := h.db.GetIncomingShares(c.Context(), user.Email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch shares")
	}

	return jsonSuccess(c, grants)
}

// Delete removes a share grant by ID. Deletion only checks that the
// grant exists; the caller is not required to be the sender or receiver.
func (h *ShareHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid share id")
	}

	if _, err := h.db.GetShareByID(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrShareNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share entry not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch share")
	}

	if err := h.db.DeleteShare(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrShareNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share entry not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete share")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "share removed successfully",
	})
}

// PublicLinks resolves a grant and returns the sender's public links.
// Only the grant's designated receiver may read through it; this is the
// single cross-tenant read path in the system.
func (h *ShareHandler) PublicLinks(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid share id")
	}

	grant, err := h.db.GetShareByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrShareNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share entry not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch share")
	}

	if grant.ReceiverEmail != user.Email {
		return jsonError(c, fiber.StatusForbidden, "access denied")
	}

	links, err := h.db.GetPublicLinksByOwner(c.Context(), grant.SenderEmail)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch links")
	}

	return jsonSuccess(c, links)
}
