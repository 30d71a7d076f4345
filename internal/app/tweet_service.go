package app

import (
	"context"
	"fmt"

	"microblog/internal/domain"
)

// timestampLayout is how posted_at renders on the home view, always in UTC.
const timestampLayout = "2006/01/02 15:04"

// TweetView is a single row of the home timeline.
type TweetView struct {
	ID       int64
	Message  string
	PostedAt string
	Name     string
}

// HomeView is the rendered timeline, newest first.
type HomeView struct {
	Tweets []TweetView
}

// TweetService handles the timeline and tweet lifecycle.
type TweetService struct {
	tweets   domain.TweetRepository
	accounts domain.AccountRepository
}

// NewTweetService creates a new tweet service.
func NewTweetService(tweets domain.TweetRepository, accounts domain.AccountRepository) *TweetService {
	return &TweetService{tweets: tweets, accounts: accounts}
}

// ListTweets returns all tweets newest first, each joined with its author's
// display name.
func (s *TweetService) ListTweets(ctx context.Context) (*HomeView, error) {
	tweets, err := s.tweets.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(tweets))
	seen := make(map[int64]bool, len(tweets))
	for _, t := range tweets {
		if !seen[t.PostedBy] {
			seen[t.PostedBy] = true
			ids = append(ids, t.PostedBy)
		}
	}

	authors, err := s.accounts.Find(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &HomeView{Tweets: make([]TweetView, 0, len(tweets))}
	for _, t := range tweets {
		author, ok := authors[t.PostedBy]
		if !ok {
			return nil, fmt.Errorf("tweet %d references missing account %d", t.ID, t.PostedBy)
		}
		view.Tweets = append(view.Tweets, TweetView{
			ID:       t.ID,
			Message:  t.Message,
			PostedAt: t.PostedAt.UTC().Format(timestampLayout),
			Name:     author.DisplayName,
		})
	}
	return view, nil
}

// CreateTweet stores a new tweet authored by the given user.
func (s *TweetService) CreateTweet(ctx context.Context, user UserContext, message string) error {
	return s.tweets.Store(ctx, domain.NewTweet(message, user.UserID))
}

// DeleteTweet removes the tweet with the given id. A missing id is a no-op;
// a caller who is not the author gets ErrForbidden.
func (s *TweetService) DeleteTweet(ctx context.Context, user UserContext, id int64) error {
	tweet, err := s.tweets.Find(ctx, id)
	if err != nil {
		return err
	}
	if tweet == nil {
		return nil
	}
	if tweet.PostedBy != user.UserID {
		return ErrForbidden
	}
	tweet.Delete()
	return s.tweets.Store(ctx, tweet)
}
