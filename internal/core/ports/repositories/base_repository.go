package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager is the atomic-scope coordinator: everything fn writes becomes
// visible together or not at all. Any error returned by fn aborts the scope.
// Store-level write conflicts (serialization failures, deadlocks) are retried
// a bounded number of times before surfacing apperrors.ErrConflict.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
