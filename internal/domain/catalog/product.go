package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

var (
	// MinUnitPrice is the lowest price a product can be listed at
	MinUnitPrice = decimal.NewFromInt(1)
	// MaxUnitPrice is the largest value a decimal(6,2) column holds
	MaxUnitPrice = decimal.RequireFromString("9999.99")
	// TaxMultiplier converts a net price into a tax-inclusive one
	TaxMultiplier = decimal.RequireFromString("1.1")
)

// Product is a sellable item in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	Title       string          `gorm:"type:varchar(255);not null"`
	Slug        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Inventory   int             `gorm:"not null;default:0"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImageKey    string          `gorm:"type:varchar(500)"`
	Promotions  []Promotion     `gorm:"many2many:product_promotions;"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. An empty slug is derived from the title,
// or from the product id when the title has no letters or digits.
func NewProduct(title, slug, description string, unitPrice decimal.Decimal, inventory int, categoryID uuid.UUID) (*Product, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return nil, err
	}
	if err := validateInventory(inventory); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewFieldError("INVALID_CATEGORY", "category_id", "Category is required")
	}

	base := shared.NewBaseAggregateRoot()
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		slug = "product-" + base.ID.String()[:8]
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: base,
		Title:             title,
		Slug:              slug,
		Description:       description,
		UnitPrice:         unitPrice.Round(2),
		Inventory:         inventory,
		CategoryID:        categoryID,
	}
	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Rename changes the title. The slug is left alone so existing links keep working.
func (p *Product) Rename(title string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = title
	p.touch()
	return nil
}

// SetSlug overrides the slug
func (p *Product) SetSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if err := validateSlug(slug); err != nil {
		return err
	}
	p.Slug = slug
	p.touch()
	return nil
}

// SetDescription replaces the description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.touch()
}

// ChangePrice sets a new unit price. Orders already placed keep the price
// they were placed at.
func (p *Product) ChangePrice(unitPrice decimal.Decimal) error {
	if err := validateUnitPrice(unitPrice); err != nil {
		return err
	}
	unitPrice = unitPrice.Round(2)
	if unitPrice.Equal(p.UnitPrice) {
		return nil
	}

	old := p.UnitPrice
	p.UnitPrice = unitPrice
	p.touch()
	p.AddDomainEvent(NewProductPriceChangedEvent(p, old))

	return nil
}

// SetInventory sets the stock on hand
func (p *Product) SetInventory(inventory int) error {
	if err := validateInventory(inventory); err != nil {
		return err
	}
	p.Inventory = inventory
	p.touch()
	return nil
}

// MoveToCategory reassigns the product to another category
func (p *Product) MoveToCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewFieldError("INVALID_CATEGORY", "category_id", "Category is required")
	}
	p.CategoryID = categoryID
	p.touch()
	return nil
}

// SetImageKey records the object storage key of the product image
func (p *Product) SetImageKey(key string) {
	p.ImageKey = key
	p.touch()
}

// PriceWithTax returns the tax-inclusive price rounded to cents
func (p *Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(TaxMultiplier).Round(2)
}

// LastUpdate returns when the product was last modified
func (p *Product) LastUpdate() time.Time {
	return p.UpdatedAt
}

func (p *Product) touch() {
	p.Touch()
	p.IncrementVersion()
}

func validateUnitPrice(price decimal.Decimal) error {
	if price.LessThan(MinUnitPrice) {
		return shared.NewFieldError("INVALID_PRICE", "unit_price", "Ensure this value is greater than or equal to 1.")
	}
	if price.GreaterThan(MaxUnitPrice) {
		return shared.NewFieldError("INVALID_PRICE", "unit_price", "Ensure this value is less than or equal to 9999.99.")
	}
	return nil
}

func validateInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewFieldError("INVALID_INVENTORY", "inventory", "Inventory cannot be negative")
	}
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewFieldError("INVALID_SLUG", "slug", "Slug cannot be empty")
	}
	if len(slug) > MaxTitleLength {
		return shared.NewFieldError("INVALID_SLUG", "slug", "Slug cannot exceed 255 characters")
	}
	return nil
}
