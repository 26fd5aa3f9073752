package identity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Address is a postal address belonging to a customer
type Address struct {
	shared.BaseEntity
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new address
func NewAddress(customerID uuid.UUID, street, city string) (*Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	if street == "" {
		return nil, shared.NewFieldError("INVALID_STREET", "street", "Street cannot be empty")
	}
	if city == "" {
		return nil, shared.NewFieldError("INVALID_CITY", "city", "City cannot be empty")
	}
	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Street:     street,
		City:       city,
	}, nil
}
