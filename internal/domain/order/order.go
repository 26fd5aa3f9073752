package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "P"
	PaymentStatusComplete PaymentStatus = "C"
	PaymentStatusFailed   PaymentStatus = "F"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusComplete, PaymentStatusFailed:
		return true
	}
	return false
}

// Label returns the display name of the status
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusComplete:
		return "Complete"
	case PaymentStatusFailed:
		return "Failed"
	}
	return string(s)
}

// Order is a placed order. Once created only its payment status may change.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	PlacedAt      time.Time     `gorm:"not null"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(1);not null;default:'P'"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the
// product price at checkout time and never follows later price changes.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Quantity  int              `gorm:"not null"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(6,2);not null"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// TotalPrice returns quantity × frozen unit price
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PlaceOrder converts a cart into a pending order for the customer.
// Every cart line must have its product loaded so the current unit price
// can be frozen onto the order line.
func PlaceOrder(customerID uuid.UUID, c *cart.Cart) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, errCustomerRequired
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		PaymentStatus:     PaymentStatusPending,
		Items:             make([]OrderItem, 0, len(c.Items)),
	}
	o.PlacedAt = o.CreatedAt

	for _, line := range c.Items {
		if line.Product == nil {
			return nil, shared.NewDomainError("PRODUCT_NOT_LOADED", "Cart line product must be loaded to freeze its price")
		}
		o.Items = append(o.Items, OrderItem{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    o.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.Product.UnitPrice,
		})
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o, c.ID))
	return o, nil
}

// UpdatePaymentStatus moves the order to another payment status
func (o *Order) UpdatePaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("INVALID_PAYMENT_STATUS", "payment_status", "Payment status must be one of P, C, F")
	}
	if status == o.PaymentStatus {
		return nil
	}

	old := o.PaymentStatus
	o.PaymentStatus = status
	o.Touch()
	o.IncrementVersion()
	o.AddDomainEvent(NewPaymentStatusChangedEvent(o, old))

	return nil
}

// TotalPrice sums all lines at their frozen prices
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalPrice())
	}
	return total
}

// ItemCount returns the number of lines
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// Checkout errors. CART_NOT_FOUND and CART_EMPTY are reported against the
// cart_id request field.
var (
	ErrCartNotFound  = shared.NewFieldError("CART_NOT_FOUND", "cart_id", "No cart with the given ID was found.")
	ErrCartEmpty     = shared.NewFieldError("CART_EMPTY", "cart_id", "The cart is empty.")
	ErrOrderNotFound = shared.NewDomainError("NOT_FOUND", "Order not found")

	errCustomerRequired = shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
)
