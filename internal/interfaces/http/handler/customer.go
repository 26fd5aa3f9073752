package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer profiles and their addresses
type CustomerHandler struct {
	BaseHandler
	customerService *identityapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *identityapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Me godoc
// @ID           getMyCustomerProfile
// @Summary      Current customer profile
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[identityapp.CustomerResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me [get]
func (h *CustomerHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	customer, err := h.customerService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// UpdateMe godoc
// @ID           updateMyCustomerProfile
// @Summary      Update the current customer profile
// @Description  Membership can only be changed by staff
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body identityapp.UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} APIResponse[identityapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me [put]
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req identityapp.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.UpdateMe(c.Request.Context(), userID, middleware.IsStaff(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        membership query string false "B, S or G"
// @Param        search query string false "Name or phone contains"
// @Param        ordering query string false "Sort field"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]identityapp.CustomerResponse]
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter identityapp.CustomerListFilter
	if !bindQuery(c, &filter) {
		return
	}
	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} APIResponse[identityapp.CustomerResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body identityapp.UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} APIResponse[identityapp.CustomerResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req identityapp.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// ListAddresses godoc
// @ID           listMyAddresses
// @Summary      Addresses of the current customer
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[[]identityapp.AddressResponse]
// @Security     BearerAuth
// @Router       /customers/me/addresses [get]
func (h *CustomerHandler) ListAddresses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	addresses, err := h.customerService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, addresses)
}

// AddAddress godoc
// @ID           addMyAddress
// @Summary      Add an address to the current customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body identityapp.AddressRequest true "Address"
// @Success      201 {object} APIResponse[identityapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me/addresses [post]
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req identityapp.AddressRequest
	if !bindJSON(c, &req) {
		return
	}
	address, err := h.customerService.AddAddress(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, address)
}

// RemoveAddress godoc
// @ID           removeMyAddress
// @Summary      Remove an address of the current customer
// @Tags         customers
// @Param        id path string true "Address ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me/addresses/{id} [delete]
func (h *CustomerHandler) RemoveAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	addressID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.customerService.RemoveAddress(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
