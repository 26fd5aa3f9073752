package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// FindByID loads a cart with its items and their products
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// Save creates the cart row. Items are persisted through MergeItem and SaveItem.
	Save(ctx context.Context, cart *Cart) error

	// MergeItem inserts the line, or adds delta to the quantity of the existing
	// (cart, product) line in a single statement. item is reloaded with the
	// stored state.
	MergeItem(ctx context.Context, item *CartItem, delta int) error

	// SaveItem updates an existing line
	SaveItem(ctx context.Context, item *CartItem) error

	// DeleteItem removes one line
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// Delete removes the cart and all of its lines
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteCreatedBefore removes carts created before the cutoff and
	// returns how many were removed
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
