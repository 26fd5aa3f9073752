package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Membership is the loyalty tier of a customer
type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

// IsValid checks if the membership is a known tier
func (m Membership) IsValid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

// Label returns the display name of the tier
func (m Membership) Label() string {
	switch m {
	case MembershipBronze:
		return "Bronze"
	case MembershipSilver:
		return "Silver"
	case MembershipGold:
		return "Gold"
	}
	return string(m)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{4,255}$`)

// Customer is the shopping profile attached one-to-one to a User
type Customer struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Phone      string     `gorm:"type:varchar(255)"`
	BirthDate  *time.Time `gorm:"type:date"`
	Membership Membership `gorm:"type:varchar(1);not null;default:'B'"`
	User       *User      `gorm:"foreignKey:UserID"`
	Addresses  []Address  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a bronze-tier profile for a user
func NewCustomer(userID uuid.UUID) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Membership:        MembershipBronze,
	}, nil
}

// UpdateProfile replaces phone and birth date
func (c *Customer) UpdateProfile(phone string, birthDate *time.Time) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return shared.NewFieldError("INVALID_PHONE", "phone", "Enter a valid phone number")
	}
	if birthDate != nil && birthDate.After(time.Now()) {
		return shared.NewFieldError("INVALID_BIRTH_DATE", "birth_date", "Birth date cannot be in the future")
	}
	c.Phone = phone
	c.BirthDate = birthDate
	c.touch()
	return nil
}

// ChangeMembership moves the customer to another tier
func (c *Customer) ChangeMembership(m Membership) error {
	if !m.IsValid() {
		return shared.NewFieldError("INVALID_MEMBERSHIP", "membership", "Membership must be one of B, S, G")
	}
	c.Membership = m
	c.touch()
	return nil
}

// AddAddress appends a postal address to the customer
func (c *Customer) AddAddress(street, city string) (*Address, error) {
	address, err := NewAddress(c.ID, street, city)
	if err != nil {
		return nil, err
	}
	c.Addresses = append(c.Addresses, *address)
	return address, nil
}

// FirstName returns the linked user's first name when loaded
func (c *Customer) FirstName() string {
	if c.User == nil {
		return ""
	}
	return c.User.FirstName
}

// LastName returns the linked user's last name when loaded
func (c *Customer) LastName() string {
	if c.User == nil {
		return ""
	}
	return c.User.LastName
}

func (c *Customer) touch() {
	c.Touch()
	c.IncrementVersion()
}

// ErrCustomerNotFound is returned when no profile is linked to an account
var ErrCustomerNotFound = shared.NewDomainError("CUSTOMER_NOT_FOUND", "No customer profile exists for this account")
