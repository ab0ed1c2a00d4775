package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSessionRepository) SaveToken(ctx context.Context, token string) error {
	query, args, err := buildUpsertSlot(tokenSlotKey, token, l.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.SaveToken").
			Msg("failed to upsert session token")
		return fmt.Errorf("%w: save token: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) LoadToken(ctx context.Context) (string, error) {
	query, args, err := buildSelectSlot(tokenSlotKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.LoadToken").
			Msg("failed to read session token")
		return "", fmt.Errorf("%w: load token: %w", ErrExecutingQuery, err)
	}
	if token == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

func (l *localSessionRepository) DeleteToken(ctx context.Context) error {
	query, args, err := buildDeleteSlot(tokenSlotKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.DeleteToken").
			Msg("failed to delete session token")
		return fmt.Errorf("%w: delete token: %w", ErrExecutingStatement, err)
	}

	return nil
}
