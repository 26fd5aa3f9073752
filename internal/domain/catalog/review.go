package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Review is a customer-written review of a product
type Review struct {
	shared.BaseEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review for a product dated today
func NewReview(productID uuid.UUID, name, description string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	r := &Review{BaseEntity: shared.NewBaseEntity()}
	if err := r.Edit(name, description); err != nil {
		return nil, err
	}
	r.ProductID = productID
	r.Date = r.CreatedAt.Truncate(24 * time.Hour)
	return r, nil
}

// Edit replaces the reviewer name and text
func (r *Review) Edit(name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return shared.NewFieldError("INVALID_NAME", "name", "Name cannot be empty")
	}
	if len(name) > MaxTitleLength {
		return shared.NewFieldError("INVALID_NAME", "name", "Name cannot exceed 255 characters")
	}
	if description == "" {
		return shared.NewFieldError("INVALID_DESCRIPTION", "description", "Description cannot be empty")
	}
	r.Name = name
	r.Description = description
	r.Touch()
	return nil
}
