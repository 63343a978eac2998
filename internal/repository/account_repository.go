package repository

import (
	"context"

	"github.com/spec-kit/contact-service/internal/domain"
)

// AccountRepository defines persistence access for admin accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type accountRepository struct {
	db DBTX
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(db DBTX) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO admins (id, username, password_hash, name)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.DisplayName,
	).Scan(&account.CreatedAt)
	return mapError(err)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, username, password_hash, name, created_at
        FROM admins WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const query = `
        SELECT id, username, password_hash, name, created_at
        FROM admins WHERE username = $1`

	return r.scanOne(ctx, query, username)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.DisplayName,
		&account.CreatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &account, nil
}
