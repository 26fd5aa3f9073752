package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Promotion is a discount that can apply to any number of products
type Promotion struct {
	shared.BaseAggregateRoot
	Description string          `gorm:"type:varchar(255);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// NewPromotion creates a new promotion
func NewPromotion(description string, discount decimal.Decimal) (*Promotion, error) {
	p := &Promotion{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := p.Update(description, discount); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces description and discount
func (p *Promotion) Update(description string, discount decimal.Decimal) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewFieldError("INVALID_DESCRIPTION", "description", "Description cannot be empty")
	}
	if len(description) > MaxTitleLength {
		return shared.NewFieldError("INVALID_DESCRIPTION", "description", "Description cannot exceed 255 characters")
	}
	if discount.IsNegative() {
		return shared.NewFieldError("INVALID_DISCOUNT", "discount", "Discount cannot be negative")
	}

	p.Description = description
	p.Discount = discount
	p.Touch()
	p.IncrementVersion()
	return nil
}

// AggregateTypePromotion is the aggregate type for promotions
const AggregateTypePromotion = "Promotion"

// EventTypePromotionDeleted is published after a promotion is removed
const EventTypePromotionDeleted = "PromotionDeleted"

// PromotionDeletedEvent is published after a promotion is removed
type PromotionDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewPromotionDeletedEvent creates a new PromotionDeletedEvent
func NewPromotionDeletedEvent(p *Promotion) *PromotionDeletedEvent {
	return &PromotionDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePromotionDeleted, AggregateTypePromotion, p.ID),
	}
}
