package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const categoryWithCountColumns = "categories.*, " +
	"(SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS product_count"

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// FindByIDWithCount finds a category and counts its products
func (r *GormCategoryRepository) FindByIDWithCount(ctx context.Context, id uuid.UUID) (*catalog.CategoryWithCount, error) {
	var rows []catalog.CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&catalog.Category{}).
		Select(categoryWithCountColumns).
		Where("categories.id = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, shared.ErrNotFound
	}
	return &rows[0], nil
}

// FindAllWithCount lists categories annotated with product counts
func (r *GormCategoryRepository) FindAllWithCount(ctx context.Context, filter shared.Filter) ([]catalog.CategoryWithCount, error) {
	var rows []catalog.CategoryWithCount
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Category{}).Select(categoryWithCountColumns), filter)
	query = paginate(query, filter, CategorySortFields, "categories.title")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Category{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return translate(r.db.WithContext(ctx).Save(category).Error)
}

// Delete deletes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id))
}

// ExistsByID checks if a category exists
func (r *GormCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &catalog.Category{}, "id = ?", id)
}

func (r *GormCategoryRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(categories.title) LIKE ?", likePattern(filter.Search))
	}
	return query
}
