package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
			},
		},
		{
			name: "username taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})
			},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			user := &domain.User{Username: "minh", PasswordHash: "$argon2id$..."}
			err := NewUserRepository(db).Create(context.Background(), user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
				AddRow(id.String(), "minh", "hash", created),
		)

		user, err := NewUserRepository(db).GetByUsername(context.Background(), "minh")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}),
		)

		_, err := NewUserRepository(db).GetByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := NewUserRepository(db).Exists(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSleepRecordRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	newer := time.Date(2024, 1, 16, 6, 30, 0, 0, time.UTC)
	older := newer.AddDate(0, 0, -1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sleep_records" WHERE user_id = $1 ORDER BY created_at DESC LIMIT 7`)).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "sleep_time", "wake_time", "sleep_quality", "notes", "created_at"}).
				AddRow(uuid.NewString(), userID.String(), newer.Add(-8*time.Hour), newer, 8, nil, newer).
				AddRow(uuid.NewString(), userID.String(), older.Add(-7*time.Hour), older, 6, "late coffee", older),
		)

	records, err := NewSleepRecordRepository(db).ListRecent(context.Background(), userID, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 8, records[0].SleepQuality)
	assert.Nil(t, records[0].Notes)
	require.NotNil(t, records[1].Notes)
	assert.Equal(t, "late coffee", *records[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepRecordRepository_ListRecent_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sleep_records"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := NewSleepRecordRepository(db).ListRecent(context.Background(), uuid.New(), 30)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMapWriteError(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, mapWriteError(nil))
	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: "23505"}), domain.ErrConflict)
	assert.Equal(t, other, mapWriteError(other))
	assert.NotErrorIs(t, mapWriteError(&pgconn.PgError{Code: "23503"}), domain.ErrConflict)
}
