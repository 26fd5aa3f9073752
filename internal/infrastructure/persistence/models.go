package persistence

import (
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/tagging"
	"gorm.io/gorm"
)

// Models lists every persisted type. The SQL migrations are the source of
// truth for PostgreSQL; AutoMigrate over Models backs SQLite test databases.
func Models() []any {
	return []any{
		&catalog.Category{},
		&catalog.Promotion{},
		&catalog.Product{},
		&productPromotion{},
		&catalog.Review{},
		&identity.User{},
		&identity.Customer{},
		&identity.Address{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
		&tagging.Tag{},
		&tagging.TaggedItem{},
	}
}

// AutoMigrate creates or updates the schema for Models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
