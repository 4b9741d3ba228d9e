package validation

import (
	"net"
	"testing"
)

func TestValidateLinkURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		message string
	}{
		{"valid http", "http://example.com", true, ""},
		{"valid https", "https://example.com/path?q=1", true, ""},
		{"bare scheme is enough characters", "https://x", true, ""},
		{"empty", "", false, "URL is required"},
		{"missing scheme", "example.com", false, "Invalid URL"},
		{"wrong scheme", "ftp://example.com", false, "Invalid URL"},
		{"scheme only", "https://", false, "Invalid URL"},
		{"whitespace in url", "https://example.com/a b", false, "Invalid URL"},
		{"scheme not at start", "see https://example.com", false, "Invalid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateLinkURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateLinkURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if msg != tt.message {
				t.Errorf("ValidateLinkURL(%q) message = %q, want %q", tt.url, msg, tt.message)
			}
		})
	}
}

func TestValidateSearchTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		valid   bool
		message string
	}{
		{"plain term", "alice", true, ""},
		{"single char", "a", true, ""},
		{"empty", "", false, "Search string is required"},
		{"whitespace only", "   ", false, "Search string is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateSearchTerm(tt.term)
			if valid != tt.valid {
				t.Errorf("ValidateSearchTerm(%q) valid = %v, want %v", tt.term, valid, tt.valid)
			}
			if msg != tt.message {
				t.Errorf("ValidateSearchTerm(%q) message = %q, want %q", tt.term, msg, tt.message)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		private bool
	}{
		{"loopback v4", "127.0.0.1", true},
		{"loopback v6", "::1", true},
		{"rfc1918 10", "10.1.2.3", true},
		{"rfc1918 172", "172.16.0.1", true},
		{"rfc1918 192", "192.168.1.1", true},
		{"link local", "169.254.1.1", true},
		{"unspecified", "0.0.0.0", true},
		{"aws metadata", "169.254.169.254", true},
		{"azure metadata", "168.63.129.16", true},
		{"public v4", "93.184.216.34", false},
		{"public dns", "8.8.8.8", false},
		{"public v6", "2606:2800:220:1:248:1893:25c8:1946", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("failed to parse IP %q", tt.ip)
			}
			if got := IsPrivateIP(ip); got != tt.private {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.private)
			}
		})
	}
}

func TestIsPrivateIP_Nil(t *testing.T) {
	if IsPrivateIP(nil) {
		t.Error("IsPrivateIP(nil) = true, want false")
	}
}

func TestIsPrivateHost_Localhost(t *testing.T) {
	private, err := IsPrivateHost("localhost")
	if err != nil {
		t.Fatalf("IsPrivateHost(localhost) error = %v", err)
	}
	if !private {
		t.Error("IsPrivateHost(localhost) = false, want true")
	}
}

func TestIsPrivateHost_WithPort(t *testing.T) {
	private, err := IsPrivateHost("127.0.0.1:8080")
	if err != nil {
		t.Fatalf("IsPrivateHost(127.0.0.1:8080) error = %v", err)
	}
	if !private {
		t.Error("IsPrivateHost(127.0.0.1:8080) = false, want true")
	}
}

func TestValidateURLForFetch_PrivateTarget(t *testing.T) {
	valid, msg := ValidateURLForFetch("http://127.0.0.1/admin")
	if valid {
		t.Error("ValidateURLForFetch() accepted a loopback target")
	}
	if msg != "URL points to a private or reserved IP address" {
		t.Errorf("ValidateURLForFetch() message = %q", msg)
	}
}

func TestValidateURLForFetch_InvalidURL(t *testing.T) {
	valid, msg := ValidateURLForFetch("not-a-url")
	if valid {
		t.Error("ValidateURLForFetch() accepted a malformed URL")
	}
	if msg != "Invalid URL" {
		t.Errorf("ValidateURLForFetch() message = %q", msg)
	}
}
