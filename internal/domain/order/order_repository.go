package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// FilterCustomerID restricts FindAll and Count to one customer
const FilterCustomerID = "customer_id"

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID loads an order with its items and their products
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll lists orders with items
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create inserts the order and all of its items
	Create(ctx context.Context, order *Order) error

	// SavePaymentStatus persists the payment status and version only
	SavePaymentStatus(ctx context.Context, order *Order) error

	// Delete removes an order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if an order exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CountItemsByProduct counts order lines referencing a product
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

// CheckoutRepositories are the repositories checkout touches, all bound to
// one database transaction.
type CheckoutRepositories interface {
	Carts() cart.CartRepository
	Customers() identity.CustomerRepository
	Orders() OrderRepository
}

// CheckoutTransactor runs fn inside a single transaction. If fn returns an
// error every write made through the repositories is rolled back.
type CheckoutTransactor interface {
	WithinTx(ctx context.Context, fn func(repos CheckoutRepositories) error) error
}
