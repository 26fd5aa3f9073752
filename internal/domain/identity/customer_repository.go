package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID loads a customer with the linked user
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByUserID loads the customer linked to an account
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)

	// FindAll lists customers with their users
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByID checks if a customer exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates the customer row
	Save(ctx context.Context, customer *Customer) error
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Address, error)
	Save(ctx context.Context, address *Address) error
	Delete(ctx context.Context, customerID, id uuid.UUID) error
}
