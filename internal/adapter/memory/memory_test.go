package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
)

func TestAccounts_StoreAndFind(t *testing.T) {
	ctx := context.Background()
	db := New()

	a := domain.NewAccount("a@x", "p", "Alice")
	require.NoError(t, db.Store(ctx, a))
	assert.NotZero(t, a.ID)

	b := domain.NewAccount("b@x", "p", "Bob")
	require.NoError(t, db.Store(ctx, b))

	found, err := db.Find(ctx, []int64{a.ID, b.ID, 99})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Alice", found[a.ID].DisplayName)
	assert.Equal(t, "Bob", found[b.ID].DisplayName)

	byEmail, err := db.FindByEmail(ctx, "a@x")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, a.ID, byEmail.ID)

	missing, err := db.FindByEmail(ctx, "nobody@x")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccounts_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := New()

	require.NoError(t, db.Store(ctx, domain.NewAccount("a@x", "p", "Alice")))
	err := db.Store(ctx, domain.NewAccount("a@x", "q", "Imposter"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestTweets_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New().NewTweetRepo()

	tweet := domain.NewTweet("hello", 1)
	require.NoError(t, repo.Store(ctx, tweet))
	require.NotZero(t, tweet.ID)

	found, err := repo.Find(ctx, tweet.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, tweet.Message, found.Message)
	assert.Equal(t, tweet.PostedBy, found.PostedBy)
	assert.True(t, tweet.PostedAt.Equal(found.PostedAt))
}

func TestTweets_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := New().NewTweetRepo()

	t1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	older := &domain.Tweet{Message: "older", PostedAt: t1, PostedBy: 1}
	newer := &domain.Tweet{Message: "newer", PostedAt: t2, PostedBy: 2}
	tiedA := &domain.Tweet{Message: "tied a", PostedAt: t2, PostedBy: 1}

	require.NoError(t, repo.Store(ctx, older))
	require.NoError(t, repo.Store(ctx, newer))
	require.NoError(t, repo.Store(ctx, tiedA))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// posted_at desc, ties broken by id desc
	assert.Equal(t, "tied a", list[0].Message)
	assert.Equal(t, "newer", list[1].Message)
	assert.Equal(t, "older", list[2].Message)
}

func TestTweets_StoreDeleted(t *testing.T) {
	ctx := context.Background()
	repo := New().NewTweetRepo()

	tweet := domain.NewTweet("doomed", 1)
	require.NoError(t, repo.Store(ctx, tweet))

	tweet.Delete()
	require.NoError(t, repo.Store(ctx, tweet))

	found, err := repo.Find(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	require.NoError(t, repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)))

	s, err := repo.GetByToken(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(1), s.UserID)

	require.NoError(t, repo.Delete(ctx, "tok"))
	s, err = repo.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSessions_Expired(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	require.NoError(t, repo.Create(ctx, 1, "old", time.Now().Add(-time.Minute)))

	s, err := repo.GetByToken(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSessions_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewSessionRepo()

	require.NoError(t, repo.Create(ctx, 1, "old", time.Now().Add(-time.Minute)))
	require.NoError(t, repo.Create(ctx, 1, "live", time.Now().Add(time.Hour)))

	require.NoError(t, repo.DeleteExpired(ctx))

	live, err := repo.GetByToken(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, live)
	assert.Len(t, db.sessions, 1)
}
