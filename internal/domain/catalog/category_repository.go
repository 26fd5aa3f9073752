package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByIDWithCount finds a category and counts its products
	FindByIDWithCount(ctx context.Context, id uuid.UUID) (*CategoryWithCount, error)

	// FindAllWithCount lists categories annotated with product counts
	FindAllWithCount(ctx context.Context, filter shared.Filter) ([]CategoryWithCount, error)

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if a category exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
