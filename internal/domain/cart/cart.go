package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// Cart is a pre-order basket. Its ID is random and doubles as the access
// token for the cart: whoever holds the ID may read and modify it.
type Cart struct {
	shared.BaseAggregateRoot
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product line in a cart
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:1"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:2"`
	Quantity  int              `gorm:"not null"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Items:             make([]CartItem, 0),
	}
}

// AddItem adds quantity of a product to the cart. If the product is already
// in the cart the quantities are summed on the existing line.
// It returns the affected line.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) (*CartItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewFieldError("INVALID_PRODUCT", "product_id", "Product ID cannot be empty")
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	if existing := c.ItemByProduct(productID); existing != nil {
		existing.Quantity += quantity
		existing.Touch()
		return existing, nil
	}

	c.Items = append(c.Items, CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     c.ID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	return &c.Items[len(c.Items)-1], nil
}

// UpdateItemQuantity replaces the quantity of a line
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) (*CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	item := c.Item(itemID)
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	item.Quantity = quantity
	item.Touch()
	return item, nil
}

// RemoveItem drops a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Item returns the line with the given ID, or nil
func (c *Cart) Item(itemID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemByProduct returns the line holding the product, or nil
func (c *Cart) ItemByProduct(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalPrice sums quantity × unit price over all lines with a loaded product
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].TotalPrice())
	}
	return total
}

// IsExpired reports whether the cart is older than ttl. A zero ttl never expires.
func (c *Cart) IsExpired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(c.CreatedAt) > ttl
}

// TotalPrice returns quantity × the product's current unit price.
// It is zero when the product has not been loaded.
func (i *CartItem) TotalPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewFieldError("INVALID_QUANTITY", "quantity", "Ensure this value is greater than or equal to 1.")
	}
	return nil
}

// Cart errors
var (
	ErrCartNotFound     = shared.NewDomainError("NOT_FOUND", "Cart not found")
	ErrCartItemNotFound = shared.NewDomainError("NOT_FOUND", "Cart item not found")
)
