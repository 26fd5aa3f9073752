package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// PlaceOrderRequest converts a cart into an order
type PlaceOrderRequest struct {
	CartID uuid.UUID `json:"cart_id" binding:"required"`
}

// UpdatePaymentStatusRequest changes the payment status of an order
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=P C F"`
}

// OrderListFilter holds list query parameters for orders
type OrderListFilter struct {
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=P C F"`
	Ordering      string `form:"ordering"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// OrderProductResponse is the product summary embedded in an order line
type OrderProductResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title,omitempty"`
}

// OrderItemResponse represents an order line. UnitPrice is the price at
// checkout time.
type OrderItemResponse struct {
	ID         uuid.UUID            `json:"id"`
	Product    OrderProductResponse `json:"product"`
	Quantity   int                  `json:"quantity"`
	UnitPrice  decimal.Decimal      `json:"unit_price"`
	TotalPrice decimal.Decimal      `json:"total_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	PlacedAt           time.Time           `json:"placed_at"`
	PaymentStatus      string              `json:"payment_status"`
	PaymentStatusLabel string              `json:"payment_status_label"`
	Items              []OrderItemResponse `json:"items"`
	TotalPrice         decimal.Decimal     `json:"total_price"`
}

// ToOrderResponse converts an order and its lines
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		line := &o.Items[i]
		items[i] = OrderItemResponse{
			ID:         line.ID,
			Product:    OrderProductResponse{ID: line.ProductID},
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice(),
		}
		if line.Product != nil {
			items[i].Product.Title = line.Product.Title
		}
	}
	return OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		PlacedAt:           o.PlacedAt,
		PaymentStatus:      string(o.PaymentStatus),
		PaymentStatusLabel: o.PaymentStatus.Label(),
		Items:              items,
		TotalPrice:         o.TotalPrice(),
	}
}
