package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"microblog/internal/domain"
)

// AccountRepo implements domain.AccountRepository on PostgreSQL.
type AccountRepo struct {
	db *DB
}

// NewAccountRepo wraps a DB as an AccountRepository.
func NewAccountRepo(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Find returns the accounts present for the given ids.
func (r *AccountRepo) Find(ctx context.Context, ids []int64) (map[int64]*domain.Account, error) {
	accounts := make(map[int64]*domain.Account, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}

	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, email, hashed_password, display_name FROM accounts WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.HashedPassword, &a.DisplayName); err != nil {
			return nil, fmt.Errorf("find accounts: %w", err)
		}
		accounts[a.ID] = &a
	}
	return accounts, rows.Err()
}

// FindByEmail retrieves an account by exact email match.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, email, hashed_password, display_name FROM accounts WHERE email = $1",
		email,
	).Scan(&a.ID, &a.Email, &a.HashedPassword, &a.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &a, nil
}

// Store inserts a new account and assigns its generated id.
func (r *AccountRepo) Store(ctx context.Context, account *domain.Account) error {
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO accounts (email, hashed_password, display_name) VALUES ($1, $2, $3) RETURNING id",
		account.Email, account.HashedPassword, account.DisplayName,
	).Scan(&account.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("store account: %w", err)
	}
	return nil
}
