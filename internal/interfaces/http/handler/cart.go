package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartHandler handles anonymous carts and their items. Possession of the
// cart id is the only credential.
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create godoc
// @ID           createCart
// @Summary      Create an empty cart
// @Tags         carts
// @Produce      json
// @Success      201 {object} APIResponse[cartapp.CartResponse]
// @Router       /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.cartService.Create(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cart)
}

// Get godoc
// @ID           getCart
// @Summary      Get a cart with its items and total
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} APIResponse[cartapp.CartResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return
	}
	cart, err := h.cartService.Get(c.Request.Context(), cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Delete godoc
// @ID           deleteCart
// @Summary      Delete a cart
// @Tags         carts
// @Param        cart_id path string true "Cart ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return
	}
	if err := h.cartService.Delete(c.Request.Context(), cartID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListItems godoc
// @ID           listCartItems
// @Summary      List the items of a cart
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} APIResponse[[]cartapp.CartItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id}/items [get]
func (h *CartHandler) ListItems(c *gin.Context) {
	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return
	}
	items, err := h.cartService.ListItems(c.Request.Context(), cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetItem godoc
// @ID           getCartItem
// @Summary      Get a cart item
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        item_id path string true "Item ID"
// @Success      200 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id}/items/{item_id} [get]
func (h *CartHandler) GetItem(c *gin.Context) {
	cartID, itemID, ok := cartItemPath(c)
	if !ok {
		return
	}
	item, err := h.cartService.GetItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// AddItem godoc
// @ID           addCartItem
// @Summary      Add a product to a cart
// @Description  Adding a product already in the cart increases its quantity
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        request body cartapp.AddCartItemRequest true "Product and quantity"
// @Success      201 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return
	}
	var req cartapp.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// UpdateItem godoc
// @ID           updateCartItem
// @Summary      Set the quantity of a cart item
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        item_id path string true "Item ID"
// @Param        request body cartapp.UpdateCartItemRequest true "New quantity"
// @Success      200 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id}/items/{item_id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, itemID, ok := cartItemPath(c)
	if !ok {
		return
	}
	var req cartapp.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.cartService.UpdateItem(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// RemoveItem godoc
// @ID           removeCartItem
// @Summary      Remove an item from a cart
// @Tags         carts
// @Param        cart_id path string true "Cart ID"
// @Param        item_id path string true "Item ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{cart_id}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, itemID, ok := cartItemPath(c)
	if !ok {
		return
	}
	if err := h.cartService.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func cartItemPath(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	itemID, ok := uuidParam(c, "item_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return cartID, itemID, true
}
