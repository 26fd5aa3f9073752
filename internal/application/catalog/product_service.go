package catalog

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo   catalog.ProductRepository
	categoryRepo  catalog.CategoryRepository
	promotionRepo catalog.PromotionRepository
	orders        catalog.OrderHistoryReader
	publisher     shared.EventPublisher
	logger        *zap.Logger

	images      ImageStorage
	imageURLTTL time.Duration
}

// ProductServiceOption configures a ProductService
type ProductServiceOption func(*ProductService)

// WithImageStorage enables product image uploads. Download URLs are
// presigned for ttl.
func WithImageStorage(images ImageStorage, ttl time.Duration) ProductServiceOption {
	return func(s *ProductService) {
		s.images = images
		if ttl > 0 {
			s.imageURLTTL = ttl
		}
	}
}

// WithProductLogger sets the logger
func WithProductLogger(logger *zap.Logger) ProductServiceOption {
	return func(s *ProductService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	promotionRepo catalog.PromotionRepository,
	orders catalog.OrderHistoryReader,
	publisher shared.EventPublisher,
	opts ...ProductServiceOption,
) *ProductService {
	s := &ProductService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		promotionRepo: promotionRepo,
		orders:        orders,
		publisher:     publisher,
		logger:        zap.NewNop(),
		imageURLTTL:   15 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.Ordering, filter.Search)
	if filter.CategoryID != nil {
		domainFilter.Filters[catalog.FilterCategoryID] = *filter.CategoryID
	}
	if filter.UnitPriceAbove != nil {
		domainFilter.Filters[catalog.FilterUnitPriceAbove] = *filter.UnitPriceAbove
	}
	if filter.UnitPriceBelow != nil {
		domainFilter.Filters[catalog.FilterUnitPriceBelow] = *filter.UnitPriceBelow
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = ToProductResponse(&products[i], s.imageURL(ctx, &products[i]))
	}
	return items, total, nil
}

// GetByID retrieves a product with its promotions
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithPromotions(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product, s.imageURL(ctx, product))
	return &resp, nil
}

// Create creates a new product in an existing category
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Title, req.Slug, req.Description, req.UnitPrice, req.Inventory, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	resp := ToProductResponse(product, "")
	return &resp, nil
}

// Update applies a partial update. Price changes do not touch placed orders.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := product.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Slug != nil {
		if err := product.SetSlug(*req.Slug); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.UnitPrice != nil {
		if err := product.ChangePrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil {
		if err := product.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.requireCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		if err := product.MoveToCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	resp := ToProductResponse(product, s.imageURL(ctx, product))
	return &resp, nil
}

// Delete removes a product that appears on no order
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.orders.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductHasOrders
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImageKey != "" && s.images != nil {
		if err := s.images.DeleteObject(ctx, product.ImageKey); err != nil {
			s.logger.Warn("failed to delete product image",
				zap.String("product_id", id.String()),
				zap.String("key", product.ImageKey),
				zap.Error(err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, catalog.NewProductDeletedEvent(id)); err != nil {
			s.logger.Warn("failed to publish product deleted event",
				zap.String("product_id", id.String()), zap.Error(err))
		}
	}
	return nil
}

// RequestImageUpload returns a presigned upload URL and records the object
// key on the product. The previous image, if any, is left for cleanup.
func (s *ProductService) RequestImageUpload(ctx context.Context, id uuid.UUID, req ImageUploadRequest) (*ImageUploadResponse, error) {
	if s.images == nil {
		return nil, errStorageDisabled
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := imageKey(product.ID, req.FileName)
	url, expiresAt, err := s.images.GenerateUploadURL(ctx, key, req.ContentType, s.imageURLTTL)
	if err != nil {
		return nil, err
	}

	product.SetImageKey(key)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return &ImageUploadResponse{UploadURL: url, Key: key, ExpiresAt: expiresAt}, nil
}

// AttachPromotion links a promotion to a product
func (s *ProductService) AttachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error {
	if err := s.requireProductAndPromotion(ctx, productID, promotionID); err != nil {
		return err
	}
	return s.productRepo.AttachPromotion(ctx, productID, promotionID)
}

// DetachPromotion unlinks a promotion from a product
func (s *ProductService) DetachPromotion(ctx context.Context, productID, promotionID uuid.UUID) error {
	if err := s.requireProductAndPromotion(ctx, productID, promotionID); err != nil {
		return err
	}
	return s.productRepo.DetachPromotion(ctx, productID, promotionID)
}

// Exists reports whether a product exists
func (s *ProductService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.productRepo.ExistsByID(ctx, id)
}

// CountLowStock counts products with fewer than threshold units on hand
func (s *ProductService) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	filter := shared.NewFilter(1, 1, "", "")
	filter.Filters[catalog.FilterInventoryBelow] = threshold
	return s.productRepo.Count(ctx, filter)
}

func (s *ProductService) requireCategory(ctx context.Context, id uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errCategoryNotFound
	}
	return nil
}

func (s *ProductService) requireProductAndPromotion(ctx context.Context, productID, promotionID uuid.UUID) error {
	exists, err := s.productRepo.ExistsByID(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	if _, err := s.promotionRepo.FindByID(ctx, promotionID); err != nil {
		return err
	}
	return nil
}

// imageURL presigns a download URL. Failures are logged and yield no URL.
func (s *ProductService) imageURL(ctx context.Context, p *catalog.Product) string {
	if p.ImageKey == "" || s.images == nil {
		return ""
	}
	url, _, err := s.images.GenerateDownloadURL(ctx, p.ImageKey, s.imageURLTTL)
	if err != nil {
		s.logger.Warn("failed to presign product image",
			zap.String("product_id", p.ID.String()), zap.Error(err))
		return ""
	}
	return url
}

func (s *ProductService) publish(ctx context.Context, agg shared.AggregateRoot) {
	if err := shared.PublishDomainEvents(ctx, s.publisher, agg); err != nil {
		s.logger.Warn("failed to publish product events", zap.Error(err))
	}
}

// imageKey builds products/{id}/{random}{ext}; only the extension of the
// client file name is kept
func imageKey(productID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(fileName)))
	if len(ext) > 10 {
		ext = ""
	}
	return "products/" + productID.String() + "/" + uuid.NewString() + ext
}
