package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptCredentialsHashAndVerify(t *testing.T) {
	c := NewBcryptCredentials(bcrypt.MinCost)

	h, err := c.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(h, "$2") || h == "s3cret" {
		t.Fatalf("expected bcrypt hash, got %q", h)
	}
	if !c.Verify(h, "s3cret") {
		t.Fatalf("expected matching password to verify")
	}
	if c.Verify(h, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestBcryptCredentialsEmptyPassword(t *testing.T) {
	c := NewBcryptCredentials(bcrypt.MinCost)

	h, err := c.Hash("")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h != "" {
		t.Fatalf("empty password should stay empty, got %q", h)
	}
	if c.Verify("", "") {
		t.Fatalf("empty stored password must never verify")
	}
}

func TestBcryptCredentialsLegacyPlaintext(t *testing.T) {
	c := NewBcryptCredentials(bcrypt.MinCost)
	if !c.Verify("pw", "pw") {
		t.Fatalf("legacy plaintext should verify")
	}
	if c.Verify("pw", "pw2") {
		t.Fatalf("legacy plaintext mismatch should fail")
	}
}

func TestBcryptCredentialsLongPassword(t *testing.T) {
	c := NewBcryptCredentials(bcrypt.MinCost)
	long := strings.Repeat("p", 80)

	h, err := c.Hash(long)
	if err != nil {
		t.Fatalf("Hash(80 bytes): %v", err)
	}
	if !c.Verify(h, long) {
		t.Fatalf("expected long password to verify")
	}
	// Differs only after byte 72, which plain bcrypt would ignore.
	if c.Verify(h, strings.Repeat("p", 79)+"q") {
		t.Fatalf("expected tail difference to fail")
	}
}
