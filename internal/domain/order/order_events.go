package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced          = "OrderPlaced"
	EventTypePaymentStatusChanged = "OrderPaymentStatusChanged"
	EventTypeOrderDeleted         = "OrderDeleted"
)

// OrderPlacedEvent is published after checkout commits
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID       `json:"order_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	CartID     uuid.UUID       `json:"cart_id"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order, cartID uuid.UUID) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		CartID:          cartID,
		ItemCount:       o.ItemCount(),
		Total:           o.TotalPrice(),
	}
}

// PaymentStatusChangedEvent is published when the payment status changes
type PaymentStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID     `json:"order_id"`
	OldStatus PaymentStatus `json:"old_status"`
	NewStatus PaymentStatus `json:"new_status"`
}

// NewPaymentStatusChangedEvent creates a new PaymentStatusChangedEvent
func NewPaymentStatusChangedEvent(o *Order, old PaymentStatus) *PaymentStatusChangedEvent {
	return &PaymentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OldStatus:       old,
		NewStatus:       o.PaymentStatus,
	}
}

// OrderDeletedEvent is published after an order is removed
type OrderDeletedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
}

// NewOrderDeletedEvent creates a new OrderDeletedEvent
func NewOrderDeletedEvent(id uuid.UUID) *OrderDeletedEvent {
	return &OrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDeleted, AggregateTypeOrder, id),
		OrderID:         id,
	}
}
