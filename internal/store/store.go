package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/userdeck/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Tx is a transaction-scoped store.
type Tx interface {
	Users() Users
	Commit() error
	Rollback() error
}

// UserPatch carries the optional fields of a partial update. Nil means
// "leave unchanged"; PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	IsAdmin      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.IsAdmin == nil
}

type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByUsername is used during login.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// List returns all users ordered by id (ULIDs sort by creation time).
	List(ctx context.Context) ([]domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	// A duplicate username returns ErrAlreadyExists.
	Create(ctx context.Context, u domain.User) error

	// Update applies a partial update and bumps updated_at.
	Update(ctx context.Context, id string, patch UserPatch) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id string) error

	// IsEmpty returns true if there are no users. Used by bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}
