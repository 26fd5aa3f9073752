package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID loads a cart with its items and their products
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at") }).
		Preload("Items.Product").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Save creates the cart row
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error)
}

// MergeItem upserts a (cart, product) line: a new line is inserted with
// quantity delta, an existing one has delta added to its stored quantity.
// The statement is atomic so concurrent adds of the same product both count.
func (r *GormCartRepository) MergeItem(ctx context.Context, item *cart.CartItem, delta int) error {
	db := r.db.WithContext(ctx)
	now := time.Now()
	row := cart.CartItem{
		BaseEntity: shared.BaseEntity{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CartID:     item.CartID,
		ProductID:  item.ProductID,
		Quantity:   delta,
	}

	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + ?", delta),
			"updated_at": now,
		}),
	}).Create(&row).Error
	if err != nil {
		return translate(err)
	}

	var stored cart.CartItem
	err = db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
		First(&stored).Error
	if err != nil {
		return translate(err)
	}
	*item = stored
	return nil
}

// SaveItem updates an existing line's quantity
func (r *GormCartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	return requireAffected(r.db.WithContext(ctx).
		Model(&cart.CartItem{}).
		Where("id = ? AND cart_id = ?", item.ID, item.CartID).
		Updates(map[string]any{"quantity": item.Quantity, "updated_at": time.Now()}))
}

// DeleteItem removes one line
func (r *GormCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).Delete(&cart.CartItem{}, "id = ? AND cart_id = ?", itemID, cartID))
}

// Delete removes the cart and all of its lines
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Delete(&cart.Cart{}, "id = ?", id))
	})
}

// DeleteCreatedBefore removes carts created before the cutoff
func (r *GormCartRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&cart.Cart{}).Select("id").Where("created_at < ?", cutoff)
		if err := tx.Where("cart_id IN (?)", stale).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("created_at < ?", cutoff).Delete(&cart.Cart{})
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}
