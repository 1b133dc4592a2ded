// Package managers holds the long-lived collaborators the handlers are built
// on: the database pool wrapper and the JWT manager.
package managers

import (
	log "github.com/sirupsen/logrus"

	"starwars-blog/internal/interfaces"
)

// DatabaseMgr defines the interface for database management.
// It provides access to the connection pool handlers run their queries on.
type DatabaseMgr interface {
	GetPool() interfaces.PgxPoolIface
}

// DatabaseManager is responsible for managing the database connection pool.
type DatabaseManager struct {
	Pool interfaces.PgxPoolIface
}

// GetPool returns the database connection pool managed by the DatabaseManager.
func (dbMgr *DatabaseManager) GetPool() interfaces.PgxPoolIface {
	return dbMgr.Pool
}

// NewDatabaseManager creates a new DatabaseManager around the given pool.
func NewDatabaseManager(pool interfaces.PgxPoolIface) DatabaseMgr {
	log.Info("Initializing database manager")
	return &DatabaseManager{Pool: pool}
}
