package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user authenticated via OIDC.
// Email is the tenant key: links and share grants reference users by
// email, and those references are deliberately soft (no foreign keys).
type User struct {
	ID             uuid.UUID `json:"id"`
	Sub            string    `json:"sub"` // OIDC subject identifier
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Picture        string    `json:"picture"`
	ContentDefault bool      `json:"content_default"` // default privacy flag applied to new links
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
