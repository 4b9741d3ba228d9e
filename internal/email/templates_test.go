package email

import (
	"strings"
	"testing"

	"linkstash/internal/config"
	"linkstash/internal/models"
)

func testTemplates() *Templates {
	return NewTemplates(&config.Config{
		SiteTitle: "LinkStash",
		BaseURL:   "https://links.example.com",
	})
}

func TestShareCreated(t *testing.T) {
	grant := &models.ShareGrant{
		SenderEmail:   "alice@example.com",
		ReceiverEmail: "bob@example.com",
	}
	sender := &models.User{Name: "Alice", Email: "alice@example.com"}

	subject, htmlBody, textBody := testTemplates().ShareCreated(grant, sender)

	if subject != "[LinkStash] Alice shared their links with you" {
		t.Errorf("subject = %q", subject)
	}

	for _, want := range []string{"Alice", "alice@example.com", "https://links.example.com"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing %q", want)
		}
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}

	if !strings.Contains(htmlBody, "<!DOCTYPE html>") {
		t.Error("html body missing doctype")
	}
	if strings.Contains(textBody, "<") {
		t.Errorf("text body contains markup: %q", textBody)
	}
}

func TestShareCreated_NamelessSenderFallsBackToEmail(t *testing.T) {
	grant := &models.ShareGrant{
		SenderEmail:   "alice@example.com",
		ReceiverEmail: "bob@example.com",
	}
	sender := &models.User{Email: "alice@example.com"}

	subject, _, _ := testTemplates().ShareCreated(grant, sender)

	if subject != "[LinkStash] alice@example.com shared their links with you" {
		t.Errorf("subject = %q", subject)
	}
}

func TestShareCreated_EscapesSenderName(t *testing.T) {
	grant := &models.ShareGrant{
		SenderEmail:   "alice@example.com",
		ReceiverEmail: "bob@example.com",
	}
	sender := &models.User{Name: `<script>alert("x")</script>`, Email: "alice@example.com"}

	_, htmlBody, _ := testTemplates().ShareCreated(grant, sender)

	if strings.Contains(htmlBody, `<script>alert("x")</script>`) {
		t.Error("html body contains unescaped sender name")
	}
	if !strings.Contains(htmlBody, "&lt;script&gt;") {
		t.Error("html body missing escaped sender name")
	}
}
