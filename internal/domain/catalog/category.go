package catalog

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// MaxTitleLength bounds category and product titles
const MaxTitleLength = 255

// Category groups products in the catalog
type Category struct {
	shared.BaseAggregateRoot
	Title string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(title string) (*Category, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
	}
	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// Rename changes the category title
func (c *Category) Rename(title string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}

	c.Title = title
	c.Touch()
	c.IncrementVersion()

	return nil
}

// CategoryWithCount is a category annotated with the number of products in it
type CategoryWithCount struct {
	Category
	ProductCount int64 `gorm:"column:product_count;->"`
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewFieldError("INVALID_TITLE", "title", "Title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return shared.NewFieldError("INVALID_TITLE", "title", "Title cannot exceed 255 characters")
	}
	return nil
}
