package email

import (
	"testing"

	"linkstash/internal/config"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.Config
		wantEnabled bool
	}{
		{
			name: "enabled when SMTP host configured",
			cfg: &config.Config{
				SMTPHost: "smtp.example.com",
				SMTPPort: 587,
				SMTPFrom: "noreply@example.com",
			},
			wantEnabled: true,
		},
		{
			name: "disabled when SMTP host is empty",
			cfg: &config.Config{
				SMTPPort: 587,
				SMTPFrom: "noreply@example.com",
			},
			wantEnabled: false,
		},
		{
			name:        "disabled with empty config",
			cfg:         &config.Config{},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.cfg)
			if s.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", s.IsEnabled(), tt.wantEnabled)
			}
		})
	}
}

func TestSendEmail_DisabledIsNoOp(t *testing.T) {
	s := NewService(&config.Config{})

	if err := s.SendEmail([]string{"bob@example.com"}, "subject", "<p>html</p>", "text"); err != nil {
		t.Errorf("SendEmail() on disabled service error = %v, want nil", err)
	}
}

func TestSendEmail_NoRecipients(t *testing.T) {
	s := NewService(&config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		SMTPFrom: "noreply@example.com",
	})

	if err := s.SendEmail(nil, "subject", "<p>html</p>", "text"); err != nil {
		t.Errorf("SendEmail() with no recipients error = %v, want nil", err)
	}
}
