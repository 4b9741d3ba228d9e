package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareGrant is a directed permission edge: the sender has granted the
// receiver read access to the sender's public links. A grant from A to B
// does not imply one from B to A.
type ShareGrant struct {
	ID            uuid.UUID `json:"id"`
	SenderEmail   string    `json:"sender_email"`
	ReceiverEmail string    `json:"receiver_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// ShareGrantWithUser includes display info for the counterparty
// (sender for incoming grants, receiver for outgoing ones). The user
// fields are empty when the counterparty has no user record; dangling
// grants are tolerated, not fatal.
type ShareGrantWithUser struct {
	ShareGrant
	UserName    string `json:"user_name"`
	UserPicture string `json:"user_picture"`
}
