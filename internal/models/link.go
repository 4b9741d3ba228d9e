package models

import (
	"time"

	"github.com/google/uuid"
)

// Link represents a saved bookmark with enrichment metadata.
// Privacy true means the link is public: eligible for cross-tenant
// viewing through a valid share grant.
type Link struct {
	ID         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	URL        string    `json:"url"`
	Note       string    `json:"note"`
	PageURL    string    `json:"page_url"` // canonical URL reported by the enrichment API
	ImageURL   *string   `json:"image_url"`
	Title      string    `json:"title"`
	SiteName   string    `json:"site_name"`
	Privacy    bool      `json:"privacy"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsPublic returns true if the link can be viewed through a share grant.
func (l *Link) IsPublic() bool {
	return l.Privacy
}
