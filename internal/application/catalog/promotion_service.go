package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PromotionService manages promotions
type PromotionService struct {
	promotionRepo catalog.PromotionRepository
	publisher     shared.EventPublisher
	logger        *zap.Logger
}

// NewPromotionService creates a new PromotionService
func NewPromotionService(promotionRepo catalog.PromotionRepository, publisher shared.EventPublisher, logger *zap.Logger) *PromotionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromotionService{promotionRepo: promotionRepo, publisher: publisher, logger: logger}
}

// List returns promotions matching the filter
func (s *PromotionService) List(ctx context.Context, page PageRequest, ordering, search string) ([]PromotionResponse, int64, error) {
	filter := shared.NewFilter(page.Page, page.PageSize, ordering, search)

	promotions, err := s.promotionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.promotionRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]PromotionResponse, len(promotions))
	for i := range promotions {
		items[i] = ToPromotionResponse(&promotions[i])
	}
	return items, total, nil
}

// GetByID retrieves a promotion
func (s *PromotionService) GetByID(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPromotionResponse(promotion)
	return &resp, nil
}

// Create creates a promotion
func (s *PromotionService) Create(ctx context.Context, req CreatePromotionRequest) (*PromotionResponse, error) {
	promotion, err := catalog.NewPromotion(req.Description, req.Discount)
	if err != nil {
		return nil, err
	}
	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, err
	}
	resp := ToPromotionResponse(promotion)
	return &resp, nil
}

// Update applies a partial update
func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, req UpdatePromotionRequest) (*PromotionResponse, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	description, discount := promotion.Description, promotion.Discount
	if req.Description != nil {
		description = *req.Description
	}
	if req.Discount != nil {
		discount = *req.Discount
	}
	if err := promotion.Update(description, discount); err != nil {
		return nil, err
	}
	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, err
	}

	resp := ToPromotionResponse(promotion)
	return &resp, nil
}

// Delete removes a promotion and unlinks it from every product
func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, catalog.NewPromotionDeletedEvent(promotion)); err != nil {
			s.logger.Warn("failed to publish promotion deleted event",
				zap.String("promotion_id", id.String()), zap.Error(err))
		}
	}
	return nil
}
