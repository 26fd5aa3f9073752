package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// PromotionHandler handles promotion endpoints
type PromotionHandler struct {
	BaseHandler
	promotionService *catalogapp.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(promotionService *catalogapp.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

type promotionListQuery struct {
	catalogapp.PageRequest
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
}

// List godoc
// @ID           listPromotions
// @Summary      List promotions
// @Tags         promotions
// @Produce      json
// @Param        search query string false "Description contains"
// @Param        ordering query string false "discount, -discount, description"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]catalogapp.PromotionResponse]
// @Router       /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	var query promotionListQuery
	if !bindQuery(c, &query) {
		return
	}
	promotions, total, err := h.promotionService.List(c.Request.Context(), query.PageRequest, query.Ordering, query.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, promotions, total, query.Page, query.PageSize)
}

// Get godoc
// @ID           getPromotion
// @Summary      Get a promotion
// @Tags         promotions
// @Produce      json
// @Param        id path string true "Promotion ID"
// @Success      200 {object} APIResponse[catalogapp.PromotionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	promotion, err := h.promotionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promotion)
}

// Create godoc
// @ID           createPromotion
// @Summary      Create a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreatePromotionRequest true "Promotion"
// @Success      201 {object} APIResponse[catalogapp.PromotionResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req catalogapp.CreatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	promotion, err := h.promotionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, promotion)
}

// Update godoc
// @ID           updatePromotion
// @Summary      Update a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        id path string true "Promotion ID"
// @Param        request body catalogapp.UpdatePromotionRequest true "Fields to change"
// @Success      200 {object} APIResponse[catalogapp.PromotionResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /promotions/{id} [patch]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.UpdatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	promotion, err := h.promotionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promotion)
}

// Delete godoc
// @ID           deletePromotion
// @Summary      Delete a promotion
// @Tags         promotions
// @Param        id path string true "Promotion ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
