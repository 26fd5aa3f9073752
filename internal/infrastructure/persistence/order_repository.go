package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at") }).
		Preload("Items.Product")
}

// FindByID loads an order with its items and their products
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := preloadItems(r.db.WithContext(ctx)).First(&o, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// FindAll lists orders with items, newest first by default
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.applyFilter(preloadItems(r.db.WithContext(ctx)).Model(&order.Order{}), filter)
	if filter.OrderBy == "" {
		filter.OrderBy, filter.OrderDir = "placed_at", "desc"
	}
	query = paginate(query, filter, OrderSortFields, "placed_at")
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&order.Order{}), filter).Count(&count).Error
	return count, err
}

// Create inserts the order and all of its items. Callers that need the
// two inserts to be atomic run Create inside a transaction.
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(o).Error; err != nil {
		return translate(err)
	}
	if len(o.Items) == 0 {
		return nil
	}
	return translate(db.Omit(clause.Associations).Create(&o.Items).Error)
}

// SavePaymentStatus persists the payment status and version only. The row
// must still be at the version the order was loaded at; otherwise the save
// fails with shared.ErrConcurrencyConflict.
func (r *GormOrderRepository) SavePaymentStatus(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ? AND version = ?", o.ID, o.ExpectedVersion()).
		Updates(map[string]any{
			"payment_status": o.PaymentStatus,
			"version":        o.Version,
			"updated_at":     o.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	found, err := r.ExistsByID(ctx, o.ID)
	if err != nil {
		return err
	}
	if !found {
		return shared.ErrNotFound
	}
	return shared.ErrConcurrencyConflict
}

// Delete removes an order and its items
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&order.OrderItem{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Delete(&order.Order{}, "id = ?", id))
	})
}

// ExistsByID checks if an order exists
func (r *GormOrderRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &order.Order{}, "id = ?", id)
}

// CountItemsByProduct counts order lines referencing a product
func (r *GormOrderRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&order.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case order.FilterCustomerID:
			query = query.Where("orders.customer_id = ?", value)
		case "payment_status":
			query = query.Where("orders.payment_status = ?", value)
		}
	}
	return query
}
