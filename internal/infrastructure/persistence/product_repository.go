package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productPromotion is a row of the product/promotion join table
type productPromotion struct {
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PromotionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (productPromotion) TableName() string {
	return "product_promotions"
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// FindByIDWithPromotions loads a product together with its promotions
func (r *GormProductRepository) FindByIDWithPromotions(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).
		Preload("Promotions", func(db *gorm.DB) *gorm.DB { return db.Order("promotions.description") }).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
	query = paginate(query, filter, ProductSortFields, "products.title")
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter).Count(&count).Error
	return count, err
}

// CountByCategory counts products that reference a category
func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ExistsByID checks if a product exists
func (r *GormProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &catalog.Product{}, "id = ?", id)
}

// Save creates or updates a product. The promotions association is managed
// through AttachPromotion and DetachPromotion only.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error)
}

// Delete deletes a product and its promotion links
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&productPromotion{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Delete(&catalog.Product{}, "id = ?", id))
	})
}

// AttachPromotion links a promotion to a product. Linking twice is a no-op.
func (r *GormProductRepository) AttachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&productPromotion{ProductID: productID, PromotionID: promotionID}).Error
}

// DetachPromotion unlinks a promotion from a product
func (r *GormProductRepository) DetachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).
		Where("product_id = ? AND promotion_id = ?", productID, promotionID).
		Delete(&productPromotion{}))
}

// applyFilter applies search and the filter keys declared in the catalog package
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(products.title) LIKE ? OR LOWER(products.description) LIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case catalog.FilterCategoryID:
			query = query.Where("products.category_id = ?", value)
		case catalog.FilterUnitPriceAbove:
			query = query.Where("products.unit_price > ?", value)
		case catalog.FilterUnitPriceBelow:
			query = query.Where("products.unit_price < ?", value)
		case catalog.FilterInventoryBelow:
			query = query.Where("products.inventory < ?", value)
		}
	}
	return query
}
