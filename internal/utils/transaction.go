package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"starwars-blog/internal/interfaces"
	"starwars-blog/internal/schemas"
)

// BeginTransaction begins a new database transaction on the request context.
// If the transaction fails to begin, it logs and sends an error response and
// returns nil.
func BeginTransaction(c *gin.Context, pool interfaces.PgxPoolIface) pgx.Tx {
	LogMessageWithFields(c, "debug", "Beginning transaction")

	tx, err := pool.Begin(c)
	if err != nil {
		WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return nil
	}

	return tx
}

// RollbackTransaction rolls the transaction back. Safe to defer after a
// commit: a rollback of an already-closed transaction is ignored.
func RollbackTransaction(c *gin.Context, tx pgx.Tx) {
	if err := tx.Rollback(c); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return
		}
		LogMessageWithFieldsAndError(c, "error", "Error rolling back transaction", err)
	}
}

// CommitTransaction attempts to commit the given transaction. If the commit
// fails, it logs, sends an error response, and returns the error.
func CommitTransaction(c *gin.Context, tx pgx.Tx) error {
	if err := tx.Commit(c); err != nil {
		WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return err
	}

	LogMessageWithFields(c, "debug", "Transaction committed")
	return nil
}
