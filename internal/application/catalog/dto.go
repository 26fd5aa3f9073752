package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=255"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListFilter holds list query parameters for categories
type CategoryListFilter struct {
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateProductRequest represents a request to create a product.
// Slug is derived from the title when omitted.
type CreateProductRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=255"`
	Slug        string          `json:"slug" binding:"omitempty,max=255"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Inventory   int             `json:"inventory" binding:"min=0"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Slug        *string          `json:"slug" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Inventory   *int             `json:"inventory" binding:"omitempty,min=0"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	UnitPrice    decimal.Decimal     `json:"unit_price"`
	PriceWithTax decimal.Decimal     `json:"price_with_tax"`
	Inventory    int                 `json:"inventory"`
	CategoryID   uuid.UUID           `json:"category_id"`
	ImageURL     string              `json:"image_url,omitempty"`
	Promotions   []PromotionResponse `json:"promotions,omitempty"`
	LastUpdate   time.Time           `json:"last_update"`
}

// ProductListFilter holds list query parameters for products
type ProductListFilter struct {
	CategoryID     *uuid.UUID       `form:"category_id"`
	UnitPriceAbove *decimal.Decimal `form:"unit_price__gt"`
	UnitPriceBelow *decimal.Decimal `form:"unit_price__lt"`
	Search         string           `form:"search"`
	Ordering       string           `form:"ordering"`
	Page           int              `form:"page" binding:"omitempty,min=1"`
	PageSize       int              `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ImageUploadRequest asks for a presigned upload URL
type ImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp image/gif"`
}

// ImageUploadResponse carries the presigned upload target
type ImageUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateReviewRequest represents a new review. The product comes from the path.
type CreateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required,min=1"`
}

// UpdateReviewRequest represents a partial review update
type UpdateReviewRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
}

// CreatePromotionRequest represents a new promotion
type CreatePromotionRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Discount    decimal.Decimal `json:"discount"`
}

// UpdatePromotionRequest represents a partial promotion update
type UpdatePromotionRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1,max=255"`
	Discount    *decimal.Decimal `json:"discount"`
}

// PromotionResponse represents a promotion in API responses
type PromotionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Discount    decimal.Decimal `json:"discount"`
}

// PageRequest holds plain pagination parameters
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCategoryResponse converts a category and its product count
func ToCategoryResponse(c *catalog.Category, productCount int64) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Title:        c.Title,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToProductResponse converts a product. imageURL is resolved by the caller.
func ToProductResponse(p *catalog.Product, imageURL string) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.PriceWithTax(),
		Inventory:    p.Inventory,
		CategoryID:   p.CategoryID,
		ImageURL:     imageURL,
		LastUpdate:   p.LastUpdate(),
	}
	for i := range p.Promotions {
		resp.Promotions = append(resp.Promotions, ToPromotionResponse(&p.Promotions[i]))
	}
	return resp
}

// ToReviewResponse converts a review
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date.Format(time.DateOnly),
	}
}

// ToPromotionResponse converts a promotion
func ToPromotionResponse(p *catalog.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID,
		Description: p.Description,
		Discount:    p.Discount,
	}
}
