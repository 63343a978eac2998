package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/contact-service/internal/domain"
)

var accountCols = []string{"id", "username", "password_hash", "name", "created_at"}

func TestAccountRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewAccountRepository(mock)
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	account := &domain.Account{ID: "a1", Username: "admin2", PasswordHash: "hash", DisplayName: "Admin Two"}

	mock.ExpectQuery(`INSERT INTO admins \(id, username, password_hash, name\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING created_at`).
		WithArgs("a1", "admin2", "hash", "Admin Two").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))
	require.NoError(t, repo.Create(ctx, account))
	assert.Equal(t, created, account.CreatedAt)

	mock.ExpectQuery(`INSERT INTO admins`).
		WithArgs("a1", "admin2", "hash", "Admin Two").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Create(ctx, account), ErrAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewAccountRepository(mock)
	ctx := context.Background()
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, username, password_hash, name, created_at FROM admins WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("a1", "admin", "hash", "Administrator", created))
	account, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "a1", account.ID)
	assert.Equal(t, "Administrator", account.DisplayName)

	mock.ExpectQuery(`FROM admins WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewAccountRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`FROM admins WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("a1", "admin", "hash", "Administrator", time.Now()))
	account, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "admin", account.Username)

	mock.ExpectQuery(`FROM admins WHERE id = \$1`).
		WithArgs("a2").
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(ctx, "a2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
