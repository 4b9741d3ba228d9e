package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"linkstash/internal/config"
	"linkstash/internal/db"
	"linkstash/internal/enrich"
	"linkstash/internal/metrics"
	"linkstash/internal/models"
	"linkstash/internal/validation"
)

// Enricher fetches page metadata for a URL.
type Enricher interface {
	Fetch(ctx context.Context, pageURL string) (*enrich.Metadata, error)
}

// LinkHandler handles link CRUD operations.
type LinkHandler struct {
	db       *db.DB
	cfg      *config.Config
	enricher Enricher
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(database *db.DB, cfg *config.Config, enricher Enricher) *LinkHandler {
	return &LinkHandler{db: database, cfg: cfg, enricher: enricher}
}

// List returns all links owned by the caller.
func (h *LinkHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	links, err := h.db.GetLinksByOwner(c.Context(), user.Email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch links")
	}

	return jsonSuccess(c, links)
}

// Create saves a new link for the caller, enriching it with metadata
// from the content-extraction API first. Enrichment failures degrade to
// placeholder metadata and never block creation.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		URL     string `json:"url"`
		Note    string `json:"note"`
		Privacy *bool  `json:"privacy"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateLinkURL(body.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	// New links inherit the user's default privacy unless the request
	// says otherwise.
	privacy := user.ContentDefault
	if body.Privacy != nil {
		privacy = *body.Privacy
	}

	meta := h.enrichURL(c.Context(), body.URL)

	link := &models.Link{
		OwnerEmail: user.Email,
		URL:        body.URL,
		Note:       body.Note,
		PageURL:    meta.PageURL,
		ImageURL:   meta.ImageURL,
		Title:      meta.Title,
		SiteName:   meta.SiteName,
		Privacy:    privacy,
	}

	if err := h.db.CreateLink(c.Context(), link); err != nil {
		if errors.Is(err, db.ErrDuplicateLink) {
			return jsonError(c, fiber.StatusConflict, "link already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create link")
	}

	return jsonSuccess(c, link)
}

// enrichURL fetches metadata for the URL, falling back to placeholder
// metadata on any failure. URLs resolving to private address space are
// never fetched.
func (h *LinkHandler) enrichURL(ctx context.Context, pageURL string) *enrich.Metadata {
	if safe, _ := validation.ValidateURLForFetch(pageURL); !safe {
		metrics.RecordEnrichment("blocked")
		return enrich.Fallback(pageURL)
	}

	meta, err := h.enricher.Fetch(ctx, pageURL)
	if err != nil {
		slog.Warn("enrichment failed, using placeholder metadata", "url", pageURL, "error", err)
		metrics.RecordEnrichment("failure")
		return enrich.Fallback(pageURL)
	}

	metrics.RecordEnrichment("success")
	return meta
}

// Update modifies a link's url, note, and privacy flag. Only the owner
// may update a link; enrichment metadata is not re-fetched on edit.
func (h *LinkHandler) Update(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	var body struct {
		URL     string `json:"url"`
		Note    string `json:"note"`
		Privacy bool   `json:"privacy"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateLinkURL(body.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	link, err := h.db.GetLinkByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch link")
	}

	if link.OwnerEmail != user.Email {
		return jsonError(c, fiber.StatusForbidden, "you do not have permission to update this link")
	}

	link.URL = body.URL
	link.Note = body.Note
	link.Privacy = body.Privacy

	if err := h.db.UpdateLink(c.Context(), link); err != nil {
		if errors.Is(err, db.ErrDuplicateLink) {
			return jsonError(c, fiber.StatusConflict, "link already exists")
		}
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update link")
	}

	return jsonSuccess(c, link)
}

// Delete removes a link. Only the owner may delete a link.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	link, err := h.db.GetLinkByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch link")
	}

	if link.OwnerEmail != user.Email {
		return jsonError(c, fiber.StatusForbidden, "you do not have permission to delete this link")
	}

	if err := h.db.DeleteLink(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete link")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "link deleted successfully",
	})
}
