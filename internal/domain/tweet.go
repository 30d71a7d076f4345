package domain

import (
	"context"
	"time"
)

// Tweet is a short message authored by an account at a specific time.
type Tweet struct {
	ID       int64 // zero until persisted
	Message  string
	PostedAt time.Time
	PostedBy int64

	deleted bool
}

// NewTweet builds an unpersisted tweet stamped with the current UTC time.
func NewTweet(message string, postedBy int64) *Tweet {
	return &Tweet{
		Message:  message,
		PostedAt: time.Now().UTC(),
		PostedBy: postedBy,
	}
}

// Delete marks the tweet for removal on the next Store.
func (t *Tweet) Delete() {
	t.deleted = true
}

// IsDeleted reports whether the tweet has been marked for removal.
func (t *Tweet) IsDeleted() bool {
	return t.deleted
}

// TweetRepository defines the port for tweet persistence operations.
type TweetRepository interface {
	// Find returns the tweet with the given id, or nil if none.
	Find(ctx context.Context, id int64) (*Tweet, error)
	// List returns all tweets ordered by posted_at descending, ties broken
	// by id descending.
	List(ctx context.Context) ([]*Tweet, error)
	// Store inserts the tweet when it has no ID (assigning one), removes the
	// row when the tweet is marked deleted, and is a no-op otherwise.
	Store(ctx context.Context, tweet *Tweet) error
}
