package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewService manages reviews nested under a product
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo catalog.ReviewRepository, productRepo catalog.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// List returns the reviews of a product, newest first
func (s *ReviewService) List(ctx context.Context, productID uuid.UUID, page PageRequest) ([]ReviewResponse, int64, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, 0, err
	}

	filter := shared.NewFilter(page.Page, page.PageSize, "", "")
	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviewRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		items[i] = ToReviewResponse(&reviews[i])
	}
	return items, total, nil
}

// GetByID retrieves one review of a product
func (s *ReviewService) GetByID(ctx context.Context, productID, id uuid.UUID) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, productID, id)
	if err != nil {
		return nil, err
	}
	resp := ToReviewResponse(review)
	return &resp, nil
}

// Create adds a review to the product in the path
func (s *ReviewService) Create(ctx context.Context, productID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	review, err := catalog.NewReview(productID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	resp := ToReviewResponse(review)
	return &resp, nil
}

// Update applies a partial update
func (s *ReviewService) Update(ctx context.Context, productID, id uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, productID, id)
	if err != nil {
		return nil, err
	}

	name, description := review.Name, review.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if err := review.Edit(name, description); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	resp := ToReviewResponse(review)
	return &resp, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, productID, id uuid.UUID) error {
	return s.reviewRepo.Delete(ctx, productID, id)
}

func (s *ReviewService) requireProduct(ctx context.Context, productID uuid.UUID) error {
	exists, err := s.productRepo.ExistsByID(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}
