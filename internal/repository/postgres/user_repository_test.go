package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

func TestUserRepositoryCreate(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(
				sqlmock.AnyArg(), "Jane Doe", "jane@x.com", "jane",
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		user := &models.User{
			Name:         "Jane Doe",
			Email:        "Jane@X.com",
			Username:     "Jane",
			PasswordHash: "$2a$12$fakehash",
		}
		err := repo.Create(user)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, now, user.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(fmt.Errorf(`pq: duplicate key value violates unique constraint "users_email_key"`))

		err := repo.Create(&models.User{Name: "Dup", Email: "jane@x.com", Username: "other"})
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(fmt.Errorf(`pq: duplicate key value violates unique constraint "users_username_key"`))

		err := repo.Create(&models.User{Name: "Dup", Email: "other@x.com", Username: "jane"})
		assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	})
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	userColumnNames := []string{
		"id", "name", "email", "username", "password_hash", "phone",
		"date_of_birth", "nationality", "avatar_url", "created_at", "updated_at",
	}

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("jane@x.com").
			WillReturnRows(sqlmock.NewRows(userColumnNames).AddRow(
				id, "Jane Doe", "jane@x.com", "jane", "$2a$12$fakehash", nil,
				nil, nil, nil, now, now,
			))

		user, err := repo.GetByEmail("Jane@X.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "jane", user.Username)
		assert.False(t, user.Phone.Valid)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("ghost@x.com").
			WillReturnRows(sqlmock.NewRows(userColumnNames))

		_, err := repo.GetByEmail("ghost@x.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`UPDATE users`).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		user := &models.User{ID: uuid.New(), Name: "New Name"}
		err := repo.Update(user)
		require.NoError(t, err)
		assert.Equal(t, now, user.UpdatedAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users`).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.Update(&models.User{ID: uuid.New()})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
