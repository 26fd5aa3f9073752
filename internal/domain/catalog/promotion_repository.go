package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// PromotionRepository defines the interface for promotion persistence
type PromotionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Promotion, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Promotion, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, promotion *Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}
