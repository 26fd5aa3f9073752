package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewRepository defines the interface for review persistence.
// Reviews are always addressed through their product.
type ReviewRepository interface {
	FindByID(ctx context.Context, productID, id uuid.UUID) (*Review, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Review, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	Save(ctx context.Context, review *Review) error
	Delete(ctx context.Context, productID, id uuid.UUID) error
}
