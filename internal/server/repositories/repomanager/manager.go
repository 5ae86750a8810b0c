// Package repomanager vends repository implementations bound to a DBTX and
// owns schema migrations, so services can run repository calls either on
// the pool or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avasiljevs/userauth/internal/dbx"
	"github.com/avasiljevs/userauth/internal/server/repositories/accounts"
)

// RepositoryManager builds repositories over an arbitrary DBTX and runs
// schema migrations.
type RepositoryManager interface {
	// Accounts returns an accounts.Repository bound to the provided DBTX.
	Accounts(db dbx.DBTX) accounts.Repository

	// RunMigrations brings the backing schema up to date. Called once
	// during initialization; the service refuses to start without it.
	RunMigrations(ctx context.Context, db *sql.DB) error
}
