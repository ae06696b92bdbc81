package repository

import (
	"context"

	"github.com/mlavell/sproutlog/internal/logger"
)

// ErrMsgTxClosed matches the error text pgx returns when a transaction has
// already been committed or rolled back.
const ErrMsgTxClosed = "tx is closed"

// Tx is the common shape of repository transactions.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction, logging failures except the
// expected "already closed" case after a successful commit. Intended for
// use with defer.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
