package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	publisher    shared.EventPublisher
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// List returns categories annotated with their product counts
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.Ordering, filter.Search)

	categories, err := s.categoryRepo.FindAllWithCount(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]CategoryResponse, len(categories))
	for i := range categories {
		items[i] = ToCategoryResponse(&categories[i].Category, categories[i].ProductCount)
	}
	return items, total, nil
}

// GetByID retrieves a category with its product count
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDWithCount(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(&category.Category, category.ProductCount)
	return &resp, nil
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Title)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	s.publish(ctx, category)

	resp := ToCategoryResponse(category, 0)
	return &resp, nil
}

// Update applies a partial update
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if err := category.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category, count)
	return &resp, nil
}

// Delete removes a category that no product references
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasProducts
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, catalog.NewCategoryDeletedEvent(id)); err != nil {
			s.logger.Warn("failed to publish category deleted event",
				zap.String("category_id", id.String()), zap.Error(err))
		}
	}
	return nil
}

func (s *CategoryService) publish(ctx context.Context, agg shared.AggregateRoot) {
	if err := shared.PublishDomainEvents(ctx, s.publisher, agg); err != nil {
		s.logger.Warn("failed to publish category events", zap.Error(err))
	}
}
