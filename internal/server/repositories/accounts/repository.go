// Package accounts declares the persistence contract the session/account
// service consumes, plus its PostgreSQL implementation. The core treats the
// store as an external collaborator: it never relies on the store to
// enforce uniqueness atomically, though the schema's UNIQUE constraint is
// the final backstop.
package accounts

import (
	"context"

	"github.com/avasiljevs/userauth/internal/server/models"
)

// Repository defines CRUD operations against the persistent account table,
// keyed by email.
type Repository interface {
	// GetByEmail returns the account with the given email, or
	// common.ErrorNotFound if no such row exists.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns the account with the given ID, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Account, error)

	// Create inserts a new account row and returns it with the
	// store-assigned ID. A uniqueness violation on email is returned as
	// common.ErrUserAlreadyExists.
	Create(ctx context.Context, email, passwordHash, salt string) (*models.Account, error)

	// UpdateEmail replaces the email of the account currently matching
	// filter. A uniqueness violation on the new email is returned as
	// common.ErrUserAlreadyExists.
	UpdateEmail(ctx context.Context, filter, newEmail string) error

	// UpdateCredentials replaces passwordHash and salt together for the
	// account matching filter.
	UpdateCredentials(ctx context.Context, filter, passwordHash, salt string) error

	// DeleteByEmail removes the account row matching email.
	DeleteByEmail(ctx context.Context, email string) error
}
