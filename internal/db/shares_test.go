package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"linkstash/internal/models"
)

func TestCreateShare(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	grant := &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"}
	if err := db.CreateShare(ctx, grant); err != nil {
		t.Fatalf("CreateShare() error = %v", err)
	}
	if grant.ID == uuid.Nil {
		t.Error("CreateShare() did not set ID")
	}
}

func TestCreateShare_Duplicate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"}); err != nil {
		t.Fatalf("CreateShare() first error = %v", err)
	}

	err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"})
	if !errors.Is(err, ErrDuplicateShare) {
		t.Errorf("CreateShare() duplicate error = %v, want ErrDuplicateShare", err)
	}
}

func TestCreateShare_ReversedPairIsDistinct(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"}); err != nil {
		t.Fatalf("CreateShare() a->b error = %v", err)
	}
	if err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "b@example.com", ReceiverEmail: "a@example.com"}); err != nil {
		t.Errorf("CreateShare() b->a error = %v, want nil (direction matters)", err)
	}
}

func TestGetOutgoingAndIncomingShares(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	receiver := &models.User{Sub: "sub-b", Username: "bee", Email: "b@example.com", Name: "Bee"}
	if err := db.UpsertUser(ctx, receiver); err != nil {
		t.Fatalf("UpsertUser() error = %v", err)
	}

	if err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"}); err != nil {
		t.Fatalf("CreateShare() error = %v", err)
	}
	if err := db.CreateShare(ctx, &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "c@example.com"}); err != nil {
		t.Fatalf("CreateShare() error = %v", err)
	}

	outgoing, err := db.GetOutgoingShares(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("GetOutgoingShares() error = %v", err)
	}
	if len(outgoing) != 2 {
		t.Fatalf("GetOutgoingShares() returned %d grants, want 2", len(outgoing))
	}

	var withUser, withoutUser *models.ShareGrantWithUser
	for i := range outgoing {
		switch outgoing[i].ReceiverEmail {
		case "b@example.com":
			withUser = &outgoing[i]
		case "c@example.com":
			withoutUser = &outgoing[i]
		}
	}
	if withUser == nil || withoutUser == nil {
		t.Fatal("GetOutgoingShares() missing expected receivers")
	}
	if withUser.UserName != "Bee" {
		t.Errorf("GetOutgoingShares() user name = %q, want Bee", withUser.UserName)
	}
	// Grants may point at emails without an account; the grant still lists
	if withoutUser.UserName != "" {
		t.Errorf("GetOutgoingShares() user name for unknown email = %q, want empty", withoutUser.UserName)
	}

	incoming, err := db.GetIncomingShares(ctx, "b@example.com")
	if err != nil {
		t.Fatalf("GetIncomingShares() error = %v", err)
	}
	if len(incoming) != 1 {
		t.Fatalf("GetIncomingShares() returned %d grants, want 1", len(incoming))
	}
	if incoming[0].SenderEmail != "a@example.com" {
		t.Errorf("GetIncomingShares() sender = %q, want a@example.com", incoming[0].SenderEmail)
	}
}

func TestDeleteShare(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	grant := &models.ShareGrant{SenderEmail: "a@example.com", ReceiverEmail: "b@example.com"}
	if err := db.CreateShare(ctx, grant); err != nil {
		t.Fatalf("CreateShare() error = %v", err)
	}

	if err := db.DeleteShare(ctx, grant.ID); err != nil {
		t.Fatalf("DeleteShare() error = %v", err)
	}

	if _, err := db.GetShareByID(ctx, grant.ID); !errors.Is(err, ErrShareNotFound) {
		t.Errorf("GetShareByID() after delete error = %v, want ErrShareNotFound", err)
	}

	if err := db.DeleteShare(ctx, grant.ID); !errors.Is(err, ErrShareNotFound) {
		t.Errorf("DeleteShare() second delete error = %v, want ErrShareNotFound", err)
	}
}
