package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
}

// AccountRepositories are the repositories registration writes to, bound to
// one database transaction.
type AccountRepositories interface {
	Users() UserRepository
	Customers() CustomerRepository
}

// AccountTransactor runs fn in a single transaction so that a user never
// exists without its customer profile.
type AccountTransactor interface {
	WithinTx(ctx context.Context, fn func(repos AccountRepositories) error) error
}
