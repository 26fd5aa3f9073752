package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product endpoints, including image uploads and
// promotion links
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// productListQuery is the raw query string. Ids and prices are parsed by
// hand so a malformed value is reported against its parameter name.
type productListQuery struct {
	CategoryID     string `form:"category_id"`
	UnitPriceAbove string `form:"unit_price__gt"`
	UnitPriceBelow string `form:"unit_price__lt"`
	Search         string `form:"search"`
	Ordering       string `form:"ordering"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func (q productListQuery) toFilter() (catalogapp.ProductListFilter, []dto.ValidationDetail) {
	filter := catalogapp.ProductListFilter{
		Search:   q.Search,
		Ordering: q.Ordering,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	var details []dto.ValidationDetail

	if q.CategoryID != "" {
		id, err := uuid.Parse(q.CategoryID)
		if err != nil {
			details = append(details, dto.ValidationDetail{Field: "category_id", Message: "Must be a valid UUID."})
		} else {
			filter.CategoryID = &id
		}
	}
	parsePrice := func(raw, field string) *decimal.Decimal {
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			details = append(details, dto.ValidationDetail{Field: field, Message: "Enter a number."})
			return nil
		}
		return &d
	}
	filter.UnitPriceAbove = parsePrice(q.UnitPriceAbove, "unit_price__gt")
	filter.UnitPriceBelow = parsePrice(q.UnitPriceBelow, "unit_price__lt")
	return filter, details
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category_id query string false "Category ID"
// @Param        unit_price__gt query number false "Minimum unit price (exclusive)"
// @Param        unit_price__lt query number false "Maximum unit price (exclusive)"
// @Param        search query string false "Title or description contains"
// @Param        ordering query string false "unit_price, -unit_price, last_update, -last_update"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query productListQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, details := query.toFilter()
	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			"Request validation failed", middleware.GetRequestID(c), details))
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getProduct
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  The slug is derived from the title when omitted
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product"
// @Success      201 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update godoc
// @ID           updateProduct
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalogapp.UpdateProductRequest true "Fields to change"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Description  Refused with 405 while order items reference the product
// @Tags         products
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      405 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RequestImageUpload godoc
// @ID           requestProductImageUpload
// @Summary      Presign a product image upload
// @Description  Returns a URL the client PUTs the image to and records the object key on the product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalogapp.ImageUploadRequest true "Image metadata"
// @Success      200 {object} APIResponse[catalogapp.ImageUploadResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/image [post]
func (h *ProductHandler) RequestImageUpload(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.ImageUploadRequest
	if !bindJSON(c, &req) {
		return
	}
	upload, err := h.productService.RequestImageUpload(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, upload)
}

// AttachPromotion godoc
// @ID           attachProductPromotion
// @Summary      Attach a promotion to a product
// @Tags         products
// @Param        id path string true "Product ID"
// @Param        promotion_id path string true "Promotion ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/promotions/{promotion_id} [post]
func (h *ProductHandler) AttachPromotion(c *gin.Context) {
	productID, promotionID, ok := h.promotionLink(c)
	if !ok {
		return
	}
	if err := h.productService.AttachPromotion(c.Request.Context(), productID, promotionID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DetachPromotion godoc
// @ID           detachProductPromotion
// @Summary      Detach a promotion from a product
// @Tags         products
// @Param        id path string true "Product ID"
// @Param        promotion_id path string true "Promotion ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/promotions/{promotion_id} [delete]
func (h *ProductHandler) DetachPromotion(c *gin.Context) {
	productID, promotionID, ok := h.promotionLink(c)
	if !ok {
		return
	}
	if err := h.productService.DetachPromotion(c.Request.Context(), productID, promotionID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProductHandler) promotionLink(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	promotionID, ok := uuidParam(c, "promotion_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return productID, promotionID, true
}

// Import godoc
// @ID           importProducts
// @Summary      Bulk create products from CSV
// @Description  Columns: title, slug, description, unit_price, inventory, category_id. Every row is validated first; nothing is created when any row fails.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      201 {object} APIResponse[catalogapp.ProductImportResult]
// @Failure      400 {object} APIResponse[catalogapp.ProductImportResult]
// @Security     BearerAuth
// @Router       /products/import [post]
func (h *ProductHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFieldErrorResponse(
			dto.ErrCodeValidation, "A CSV file is required.", middleware.GetRequestID(c), "file"))
		return
	}
	file, err := header.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	result, err := h.productService.ImportProducts(c.Request.Context(), file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !result.Valid() {
		resp := dto.NewErrorResponseWithRequestID(errCodeImportRejected,
			"The file contains invalid rows. No products were created.", middleware.GetRequestID(c))
		resp.Data = result
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	h.Created(c, result)
}

const errCodeImportRejected = "IMPORT_REJECTED"
