package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review of a product
func (r *GormReviewRepository) FindByID(ctx context.Context, productID, id uuid.UUID) (*catalog.Review, error) {
	var review catalog.Review
	err := r.db.WithContext(ctx).First(&review, "product_id = ? AND id = ?", productID, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

// FindByProduct lists the reviews of a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	var reviews []catalog.Review
	query := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("date DESC, created_at DESC")
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountByProduct counts the reviews of a product
func (r *GormReviewRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Review{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	return translate(r.db.WithContext(ctx).Save(review).Error)
}

// Delete removes a review of a product
func (r *GormReviewRepository) Delete(ctx context.Context, productID, id uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).Delete(&catalog.Review{}, "product_id = ? AND id = ?", productID, id))
}
