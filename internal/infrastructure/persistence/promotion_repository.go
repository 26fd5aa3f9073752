package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPromotionRepository implements PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by its ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Promotion, error) {
	var promotion catalog.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &promotion, nil
}

// FindAll lists promotions
func (r *GormPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Promotion, error) {
	var promotions []catalog.Promotion
	query := paginate(r.search(r.db.WithContext(ctx).Model(&catalog.Promotion{}), filter), filter, PromotionSortFields, "description")
	if err := query.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Count counts promotions matching the filter
func (r *GormPromotionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.search(r.db.WithContext(ctx).Model(&catalog.Promotion{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *catalog.Promotion) error {
	return translate(r.db.WithContext(ctx).Save(promotion).Error)
}

// Delete removes a promotion and unlinks it from every product
func (r *GormPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&productPromotion{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Delete(&catalog.Promotion{}, "id = ?", id))
	})
}

func (r *GormPromotionRepository) search(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", likePattern(filter.Search))
	}
	return query
}
