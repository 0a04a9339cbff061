package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darrly207/Gemetry-BE/internal/auth/domain"
	"github.com/Darrly207/Gemetry-BE/internal/auth/repository/postgres"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, postgres.NewRepository(mock)
}

func TestGetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}).
			AddRow("user-id", "test@example.com", "tester", "hashed", now, now)

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users").
			WithArgs("test@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-id", user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "tester", user.Username)
		assert.Equal(t, "hashed", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"})
		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users").
			WithArgs("nobody@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "nobody@example.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at FROM users").
			WithArgs("test@example.com").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByEmail(context.Background(), "test@example.com")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		now := time.Now()
		user := &domain.User{
			ID:           "user-id",
			Email:        "test@example.com",
			Username:     "tester",
			PasswordHash: "hashed",
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("INSERT INTO users").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("duplicate key"))

		err := repo.Create(context.Background(), &domain.User{ID: "user-id"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore(t *testing.T) {
	mock, repo := newMockRepo(t)

	session := &domain.Session{
		ID:        "session-id",
		UserID:    "user-id",
		Token:     "the-token",
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.ID, session.UserID, session.Token, session.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Store(context.Background(), session)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByUserID(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs("user-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.DeleteByUserID(context.Background(), "user-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	t.Run("live session", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("user-id", "the-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.Exists(context.Background(), "user-id", "the-token")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no session", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("user-id", "stale-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.Exists(context.Background(), "user-id", "stale-token")

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("user-id", "the-token").
			WillReturnError(errors.New("connection refused"))

		exists, err := repo.Exists(context.Background(), "user-id", "the-token")

		assert.Error(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec("DELETE FROM sessions WHERE user_id = \\$1 AND token = \\$2").
		WithArgs("user-id", "the-token").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "user-id", "the-token")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
