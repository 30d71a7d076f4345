package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"microblog/internal/domain"
)

// TweetRepo implements domain.TweetRepository on PostgreSQL.
type TweetRepo struct {
	db *DB
}

// NewTweetRepo wraps a DB as a TweetRepository.
func NewTweetRepo(db *DB) *TweetRepo {
	return &TweetRepo{db: db}
}

// Find retrieves a tweet by id.
func (r *TweetRepo) Find(ctx context.Context, id int64) (*domain.Tweet, error) {
	var t domain.Tweet
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, message, posted_at, posted_by FROM tweets WHERE id = $1",
		id,
	).Scan(&t.ID, &t.Message, &t.PostedAt, &t.PostedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tweet: %w", err)
	}
	return &t, nil
}

// List returns all tweets, newest first.
func (r *TweetRepo) List(ctx context.Context) ([]*domain.Tweet, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, message, posted_at, posted_by FROM tweets ORDER BY posted_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []*domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.Message, &t.PostedAt, &t.PostedBy); err != nil {
			return nil, fmt.Errorf("list tweets: %w", err)
		}
		tweets = append(tweets, &t)
	}
	return tweets, rows.Err()
}

// Store inserts, deletes, or ignores the tweet depending on its state.
func (r *TweetRepo) Store(ctx context.Context, tweet *domain.Tweet) error {
	switch {
	case tweet.ID == 0:
		err := r.db.sql.QueryRowContext(ctx,
			"INSERT INTO tweets (message, posted_at, posted_by) VALUES ($1, $2, $3) RETURNING id",
			tweet.Message, tweet.PostedAt.UTC(), tweet.PostedBy,
		).Scan(&tweet.ID)
		if err != nil {
			return fmt.Errorf("store tweet: %w", err)
		}
	case tweet.IsDeleted():
		if _, err := r.db.sql.ExecContext(ctx, "DELETE FROM tweets WHERE id = $1", tweet.ID); err != nil {
			return fmt.Errorf("delete tweet: %w", err)
		}
	}
	// Persisted tweets are immutable aside from deletion.
	return nil
}
