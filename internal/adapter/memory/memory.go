// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"microblog/internal/domain"
)

// DB implements every domain repository in memory.
type DB struct {
	mu       sync.Mutex
	accounts []*domain.Account
	tweets   []*domain.Tweet
	sessions map[string]*domain.Session

	accountIDCounter int64
	tweetIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.AccountRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- AccountRepository ---

// Find returns the accounts present for the given ids.
func (db *DB) Find(ctx context.Context, ids []int64) (map[int64]*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	found := make(map[int64]*domain.Account, len(ids))
	for _, id := range ids {
		for _, a := range db.accounts {
			if a.ID == id {
				found[id] = a
				break
			}
		}
	}
	return found, nil
}

// FindByEmail retrieves an account by exact email match.
func (db *DB) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

// Store inserts a new account.
func (db *DB) Store(ctx context.Context, account *domain.Account) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Email == account.Email {
			return domain.ErrDuplicateEmail
		}
	}

	db.accountIDCounter++
	account.ID = db.accountIDCounter
	db.accounts = append(db.accounts, account)
	return nil
}

// --- TweetRepository ---

// TweetRepo implements tweet persistence.
type TweetRepo struct {
	db *DB
}

// NewTweetRepo creates a new tweet repository.
func (db *DB) NewTweetRepo() *TweetRepo {
	return &TweetRepo{db: db}
}

var _ domain.TweetRepository = (*TweetRepo)(nil)

// Find retrieves a tweet by id.
func (r *TweetRepo) Find(ctx context.Context, id int64) (*domain.Tweet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, t := range r.db.tweets {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

// List returns all tweets, newest first, ties broken by id descending.
func (r *TweetRepo) List(ctx context.Context) ([]*domain.Tweet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Tweet, 0, len(r.db.tweets))
	for _, t := range r.db.tweets {
		copied := *t
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].PostedAt.Equal(result[j].PostedAt) {
			return result[i].PostedAt.After(result[j].PostedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// Store inserts, deletes, or ignores the tweet depending on its state.
func (r *TweetRepo) Store(ctx context.Context, tweet *domain.Tweet) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	switch {
	case tweet.ID == 0:
		r.db.tweetIDCounter++
		tweet.ID = r.db.tweetIDCounter
		copied := *tweet
		r.db.tweets = append(r.db.tweets, &copied)
	case tweet.IsDeleted():
		for i, t := range r.db.tweets {
			if t.ID == tweet.ID {
				r.db.tweets = append(r.db.tweets[:i], r.db.tweets[i+1:]...)
				break
			}
		}
	}
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
