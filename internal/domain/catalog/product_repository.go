package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Filter keys understood by ProductRepository.FindAll and Count
const (
	FilterCategoryID     = "category_id"
	FilterUnitPriceAbove = "unit_price__gt"
	FilterUnitPriceBelow = "unit_price__lt"
	FilterInventoryBelow = "inventory__lt"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDWithPromotions loads a product together with its promotions
	FindByIDWithPromotions(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCategory counts products that reference a category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// ExistsByID checks if a product exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a product. Promotions are not touched.
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachPromotion links a promotion to a product
	AttachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error

	// DetachPromotion unlinks a promotion from a product
	DetachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error
}

// OrderHistoryReader reports whether products appear on placed orders.
// Product deletion consults it before removing anything.
type OrderHistoryReader interface {
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
