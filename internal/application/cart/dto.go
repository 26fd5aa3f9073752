package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
)

// AddCartItemRequest adds a product to a cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest replaces the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartProductResponse is the product summary embedded in a cart line
type CartProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CartItemResponse represents a cart line
type CartItemResponse struct {
	ID         uuid.UUID           `json:"id"`
	Product    CartProductResponse `json:"product"`
	Quantity   int                 `json:"quantity"`
	TotalPrice decimal.Decimal     `json:"total_price"`
}

// CartResponse represents a cart with its lines
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ToCartItemResponse converts a cart line. The product must be loaded for
// the summary to be filled.
func ToCartItemResponse(item *cart.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:         item.ID,
		Product:    CartProductResponse{ID: item.ProductID},
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
	if item.Product != nil {
		resp.Product.Title = item.Product.Title
		resp.Product.UnitPrice = item.Product.UnitPrice
	}
	return resp
}

// ToCartResponse converts a cart and its lines
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i := range c.Items {
		items[i] = ToCartItemResponse(&c.Items[i])
	}
	return CartResponse{
		ID:         c.ID,
		Items:      items,
		TotalPrice: c.TotalPrice(),
		CreatedAt:  c.CreatedAt,
	}
}
