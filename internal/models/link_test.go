package models

import "testing"

func TestLink_IsPublic(t *testing.T) {
	tests := []struct {
		name     string
		privacy  bool
		expected bool
	}{
		{"public link", true, true},
		{"private link", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := &Link{Privacy: tt.privacy}
			if got := link.IsPublic(); got != tt.expected {
				t.Errorf("IsPublic() = %v, want %v", got, tt.expected)
			}
		})
	}
}
