package server

import (
	"encoding/base64"
	"testing"
)

func TestDeriveEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey("some-session-secret")

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("deriveEncryptionKey() produced invalid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("deriveEncryptionKey() key length = %d bytes, want 32", len(raw))
	}

	if deriveEncryptionKey("some-session-secret") != key {
		t.Error("deriveEncryptionKey() is not deterministic")
	}
	if deriveEncryptionKey("other-secret") == key {
		t.Error("deriveEncryptionKey() returned same key for different secrets")
	}
}
