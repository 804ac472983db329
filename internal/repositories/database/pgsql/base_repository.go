package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
)

// DefaultTxMaxRetries bounds how many times a transaction is re-run after
// a store-reported write conflict before ErrConflict is surfaced.
const DefaultTxMaxRetries = 3

// BaseRepository provides the shared pool handle and the transaction
// coordinator used by every repository.
type BaseRepository struct {
	Pool       *pgxpool.Pool
	MaxRetries int
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrInternal, err)
	}
	return tx, nil
}

// Commit commits a transaction. The driver error stays in the chain so a
// commit-time serialization failure is still recognized as retryable.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrInternal, err)
	}
	return nil
}

// Rollback rolls back a transaction.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: failed to rollback transaction: %v", apperrors.ErrInternal, err)
	}
	return nil
}

// RunInTx runs fn inside a transaction: all writes become visible together
// or not at all, and any error from fn aborts every write made so far.
// Serialization failures and deadlocks are retried up to MaxRetries times;
// validation and not-found errors are never retried.
func (r *BaseRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	retries := r.MaxRetries
	if retries <= 0 {
		retries = DefaultTxMaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}

		err = fn(ctx, tx)
		if err == nil {
			if commitErr := r.Commit(ctx, tx); commitErr == nil {
				return nil
			} else if isSerializationFailure(commitErr) {
				_ = r.Rollback(ctx, tx)
				lastErr = commitErr
				continue
			} else {
				return commitErr
			}
		}

		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "rollback failed after transaction error", "error", rbErr.Error())
		}

		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: transaction aborted after %d retries: %v", apperrors.ErrConflict, retries, lastErr)
}

// isSerializationFailure reports whether the error is a PostgreSQL
// serialization failure (40001) or deadlock (40P01), both of which are safe
// to retry from the top of the scope.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// mapPgError translates constraint violations into the application error
// taxonomy. Unique violations become ErrDuplicate, foreign key violations
// ErrNotFound (the referenced row does not exist for this owner).
func mapPgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, msg)
		case "23503":
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, msg)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
