package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// ReviewHandler handles the reviews nested under a product
type ReviewHandler struct {
	BaseHandler
	reviewService *catalogapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *catalogapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List godoc
// @ID           listReviews
// @Summary      List reviews of a product
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]catalogapp.ReviewResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var page catalogapp.PageRequest
	if !bindQuery(c, &page) {
		return
	}
	reviews, total, err := h.reviewService.List(c.Request.Context(), productID, page)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reviews, total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getReview
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Success      200 {object} APIResponse[catalogapp.ReviewResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	productID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	review, err := h.reviewService.GetByID(c.Request.Context(), productID, reviewID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// Create godoc
// @ID           createReview
// @Summary      Review a product
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalogapp.CreateReviewRequest true "Review"
// @Success      201 {object} APIResponse[catalogapp.ReviewResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.reviewService.Create(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, review)
}

// Update godoc
// @ID           updateReview
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Param        request body catalogapp.UpdateReviewRequest true "Fields to change"
// @Success      200 {object} APIResponse[catalogapp.ReviewResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews/{review_id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	productID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	var req catalogapp.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.reviewService.Update(c.Request.Context(), productID, reviewID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// Delete godoc
// @ID           deleteReview
// @Summary      Delete a review
// @Tags         reviews
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, reviewID, ok := reviewPath(c)
	if !ok {
		return
	}
	if err := h.reviewService.Delete(c.Request.Context(), productID, reviewID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func reviewPath(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	reviewID, ok := uuidParam(c, "review_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return productID, reviewID, true
}
