package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"microblog/internal/domain"
)

const (
	// SessionCookieName is the cookie under which the session token travels.
	SessionCookieName = "session_token"

	// SessionLifetime is how long an issued session stays valid.
	SessionLifetime = 7 * 24 * time.Hour
)

// UserContext is the per-request authenticated identity derived from the
// session cookie.
type UserContext struct {
	UserID int64
}

// SessionToken is the cookie-encodable wrapper around a session's opaque
// identifier and lifetime.
type SessionToken struct {
	token  string
	maxAge int
}

// NewSessionToken wraps an issued token with the full session lifetime.
func NewSessionToken(token string) SessionToken {
	return SessionToken{token: token, maxAge: int(SessionLifetime / time.Second)}
}

// ClearSessionToken returns a placeholder token that evicts the cookie.
func ClearSessionToken() SessionToken {
	return SessionToken{token: "deleted", maxAge: 0}
}

// Token returns the opaque session identifier.
func (t SessionToken) Token() string {
	return t.token
}

// Cookie renders the Set-Cookie header value.
func (t SessionToken) Cookie() string {
	return fmt.Sprintf("%s=%s; Max-Age=%d; Path=/; HttpOnly", SessionCookieName, t.token, t.maxAge)
}

// SessionManager issues and resolves server-side sessions.
type SessionManager struct {
	sessions domain.SessionRepository
}

// NewSessionManager creates a session manager over the given store.
func NewSessionManager(sessions domain.SessionRepository) *SessionManager {
	return &SessionManager{sessions: sessions}
}

// Issue creates a new session for the user and returns its cookie token.
func (m *SessionManager) Issue(ctx context.Context, userID int64) (SessionToken, error) {
	token, err := generateToken()
	if err != nil {
		return SessionToken{}, err
	}
	expiresAt := time.Now().Add(SessionLifetime)
	if err := m.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return SessionToken{}, fmt.Errorf("store session: %w", err)
	}
	return NewSessionToken(token), nil
}

// Load resolves a session token to a UserContext. An unknown or expired
// token yields nil.
func (m *SessionManager) Load(ctx context.Context, token string) (*UserContext, error) {
	session, err := m.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if time.Now().After(session.ExpiresAt) {
		_ = m.sessions.Delete(ctx, token)
		return nil, nil
	}
	return &UserContext{UserID: session.UserID}, nil
}

// DeleteExpired removes expired sessions from the store.
func (m *SessionManager) DeleteExpired(ctx context.Context) error {
	return m.sessions.DeleteExpired(ctx)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
