package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore turns passwords into stored form and checks them later.
type CredentialStore interface {
	Hash(password string) (string, error)
	Verify(stored, supplied string) bool
}

type bcryptCredentials struct {
	cost int
}

func NewBcryptCredentials(cost int) CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptCredentials{cost: cost}
}

// Hash leaves an empty password empty: externally authenticated accounts have none.
func (b *bcryptCredentials) Hash(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	h, err := bcrypt.GenerateFromPassword(prehash(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify never accepts an empty stored password. Rows written before hashing
// was introduced hold the raw value and are compared in constant time.
func (b *bcryptCredentials) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if isBcryptHash(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), prehash(supplied))
		return err == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// prehash digests the password so bcrypt's 72 byte input limit never
// rejects or truncates it.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	if _, err := bcrypt.Cost([]byte(s)); err != nil {
		return false
	}
	return strings.HasPrefix(s, "$2")
}

var errInvalidCredentials = errors.New("Invalid credentials")
