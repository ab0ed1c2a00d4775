package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*localSessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &localSessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixed },
	}
	return repo, mock
}

func TestSaveToken_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_slots (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs("token", "jwt-token", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveToken(context.Background(), "jwt-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveToken_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO kv_slots").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveToken(context.Background(), "jwt-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadToken_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_slots WHERE key = ?")).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt-token"))

	token, err := repo.LoadToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadToken_NoRows(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM kv_slots").
		WithArgs("token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadToken(context.Background())
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestLoadToken_EmptyValue(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM kv_slots").
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(""))

	_, err := repo.LoadToken(context.Background())
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestLoadToken_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM kv_slots").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.LoadToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}

func TestDeleteToken_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_slots WHERE key = ?")).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteToken(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// удаление пустого слота — не ошибка
func TestDeleteToken_EmptySlot(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM kv_slots").
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteToken(context.Background()))
}

func TestDeleteToken_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM kv_slots").
		WillReturnError(errors.New("readonly database"))

	err := repo.DeleteToken(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
