package app

import (
	"context"
	"time"

	"microblog/internal/domain"
)

type mockAccountRepo struct {
	findFn        func(ctx context.Context, ids []int64) (map[int64]*domain.Account, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	storeFn       func(ctx context.Context, account *domain.Account) error
}

func (m *mockAccountRepo) Find(ctx context.Context, ids []int64) (map[int64]*domain.Account, error) {
	if m.findFn != nil {
		return m.findFn(ctx, ids)
	}
	return map[int64]*domain.Account{}, nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepo) Store(ctx context.Context, account *domain.Account) error {
	if m.storeFn != nil {
		return m.storeFn(ctx, account)
	}
	account.ID = 1
	return nil
}

type mockTweetRepo struct {
	findFn  func(ctx context.Context, id int64) (*domain.Tweet, error)
	listFn  func(ctx context.Context) ([]*domain.Tweet, error)
	storeFn func(ctx context.Context, tweet *domain.Tweet) error

	storeCalls int
}

func (m *mockTweetRepo) Find(ctx context.Context, id int64) (*domain.Tweet, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTweetRepo) List(ctx context.Context) ([]*domain.Tweet, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTweetRepo) Store(ctx context.Context, tweet *domain.Tweet) error {
	m.storeCalls++
	if m.storeFn != nil {
		return m.storeFn(ctx, tweet)
	}
	return nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}
