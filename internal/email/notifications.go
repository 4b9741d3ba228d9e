package email

import (
	"context"
	"log"

	"linkstash/internal/config"
	"linkstash/internal/models"
)

// UserGetter resolves user records for notification recipients.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Notifier sends email notifications for share events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	db        UserGetter
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, db UserGetter) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		db:        db,
	}
}

// NotifyShareCreated notifies the receiver that the sender granted them
// access to their public links. The receiver may not have a user record
// yet; that case is a silent no-op, never an error.
func (n *Notifier) NotifyShareCreated(ctx context.Context, grant *models.ShareGrant, sender *models.User) {
	if !n.service.IsEnabled() {
		return
	}

	if _, err := n.db.GetUserByEmail(ctx, grant.ReceiverEmail); err != nil {
		log.Printf("Skipping share notification, no user record for %s", grant.ReceiverEmail)
		return
	}

	subject, htmlBody, textBody := n.templates.ShareCreated(grant, sender)

	if err := n.service.SendEmail([]string{grant.ReceiverEmail}, subject, htmlBody, textBody); err != nil {
		log.Printf("Failed to send share notification to %s: %v", grant.ReceiverEmail, err)
	}
}
