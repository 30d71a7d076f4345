// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"

	"microblog/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden indicates that the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")
)

// AccountService handles registration and session issuance.
type AccountService struct {
	accounts domain.AccountRepository
	sessions *SessionManager
}

// NewAccountService creates a new account service.
func NewAccountService(accounts domain.AccountRepository, sessions *SessionManager) *AccountService {
	return &AccountService{accounts: accounts, sessions: sessions}
}

// CreateAccount registers a new account. The plaintext password is hashed by
// the entity constructor; the stored account has its ID assigned on return.
func (s *AccountService) CreateAccount(ctx context.Context, email, password, displayName string) (*domain.Account, error) {
	account := domain.NewAccount(email, password, displayName)
	if err := s.accounts.Store(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateSession authenticates the credentials and issues a session token.
// Unknown email or a non-matching password yields ErrInvalidCredentials.
func (s *AccountService) CreateSession(ctx context.Context, email, password string) (SessionToken, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return SessionToken{}, err
	}
	if account == nil || !account.MatchesPassword(password) {
		return SessionToken{}, ErrInvalidCredentials
	}
	return s.sessions.Issue(ctx, account.ID)
}

// ClearSession returns the token that evicts the session cookie.
func (s *AccountService) ClearSession() SessionToken {
	return ClearSessionToken()
}
