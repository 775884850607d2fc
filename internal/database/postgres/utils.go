package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// withTx runs fn inside a transaction and commits when it returns nil
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == PgErrorCodeUniqueViolation
}

// isMissingRow treats no rows and malformed ids alike: either way the row
// the caller asked for does not exist.
func isMissingRow(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	code := pgErrorCode(err)
	return code == PgErrorCodeInvalidText || code == PgErrorCodeForeignKeyViolation
}

// notFoundOr maps a missing row to sentinel and wraps every other error with msg
func notFoundOr(err error, sentinel error, msg string) error {
	if isMissingRow(err) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// nonNil keeps empty text arrays from being written as NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
