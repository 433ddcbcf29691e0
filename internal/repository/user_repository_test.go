package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "full_name", "role", "is_active", "created_at", "updated_at",
	}).AddRow("user-1", "admin@vtu.edu", "$2a$10$hash", "Admin One", "ADMIN", true, now, now)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM users WHERE email = \$1`).
			WithArgs("admin@vtu.edu").
			WillReturnRows(userRows())

		user, err := repo.GetByEmail(context.Background(), "admin@vtu.edu")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.True(t, user.IsAdmin())
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM users WHERE email = \$1`).
			WithArgs("nobody@vtu.edu").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@vtu.edu")

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestUserRepositoryRefreshTokens(t *testing.T) {
	t.Run("unknown token maps to unauthorized", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1`).
			WithArgs("bogus").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRefreshToken(context.Background(), "bogus")

		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("revoke updates unrevoked rows only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at = NOW\(\) WHERE token = \$1 AND revoked_at IS NULL`).
			WithArgs("tok").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RevokeRefreshToken(context.Background(), "tok")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
