// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrDuplicateEmail indicates that an account with the same email already exists.
var ErrDuplicateEmail = errors.New("email already taken")

// Account represents a registered user identity.
type Account struct {
	ID             int64 // zero until persisted
	Email          string
	HashedPassword string
	DisplayName    string
}

// NewAccount builds an unpersisted account. The plaintext password is hashed
// immediately and never retained.
func NewAccount(email, password, displayName string) *Account {
	return &Account{
		Email:          email,
		HashedPassword: HashPassword(password),
		DisplayName:    displayName,
	}
}

// MatchesPassword reports whether the plaintext password hashes to the
// stored digest.
func (a *Account) MatchesPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(a.HashedPassword), []byte(HashPassword(password))) == 1
}

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// AccountRepository defines the port for account persistence operations.
type AccountRepository interface {
	// Find returns the accounts present for the given ids; missing ids are
	// omitted from the map.
	Find(ctx context.Context, ids []int64) (map[int64]*Account, error)
	// FindByEmail returns the account with the exact email, or nil if none.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// Store inserts a new account and assigns its ID. Returns
	// ErrDuplicateEmail when the email is already taken.
	Store(ctx context.Context, account *Account) error
}
