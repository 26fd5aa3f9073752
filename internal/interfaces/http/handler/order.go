package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order administration
type OrderHandler struct {
	BaseHandler
	checkoutService *orderapp.CheckoutService
	orderService    *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *orderapp.CheckoutService, orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

func viewer(c *gin.Context) (orderapp.Viewer, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return orderapp.Viewer{}, false
	}
	return orderapp.Viewer{UserID: userID, IsStaff: middleware.IsStaff(c)}, true
}

// Place godoc
// @ID           placeOrder
// @Summary      Place an order from a cart
// @Description  Converts the cart into an order for the caller's customer profile and deletes the cart.
// @Description  A repeated Idempotency-Key is rejected with 409.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key making retries safe"
// @Param        request body orderapp.PlaceOrderRequest true "Cart to check out"
// @Success      201 {object} APIResponse[orderapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req orderapp.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), userID, req, c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List godoc
// @ID           listOrders
// @Summary      List orders
// @Description  Staff see every order, customers only their own
// @Tags         orders
// @Produce      json
// @Param        payment_status query string false "P, C or F"
// @Param        ordering query string false "placed_at, -placed_at"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]orderapp.OrderResponse]
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var filter orderapp.OrderListFilter
	if !bindQuery(c, &filter) {
		return
	}
	orders, total, err := h.orderService.List(c.Request.Context(), v, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getOrder
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} APIResponse[orderapp.OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), v, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdatePaymentStatus godoc
// @ID           updateOrderPaymentStatus
// @Summary      Change the payment status of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body orderapp.UpdatePaymentStatusRequest true "New status"
// @Success      200 {object} APIResponse[orderapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req orderapp.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete godoc
// @ID           deleteOrder
// @Summary      Delete an order
// @Tags         orders
// @Param        id path string true "Order ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
