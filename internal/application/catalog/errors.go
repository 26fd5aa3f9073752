package catalog

import "github.com/storefront/backend/internal/domain/shared"

// Deletion guards. The HTTP layer reports both as 405.
var (
	ErrCategoryHasProducts = shared.NewDomainError("CATEGORY_HAS_PRODUCTS",
		"Category cannot be deleted because it includes one or more products.")
	ErrProductHasOrders = shared.NewDomainError("PRODUCT_HAS_ORDERS",
		"Product cannot be deleted because it is associated with an order item.")
)

var (
	errCategoryNotFound = shared.NewFieldError("CATEGORY_NOT_FOUND", "category_id",
		"No category with the given ID was found.")
	errStorageDisabled = shared.NewDomainError("STORAGE_DISABLED",
		"Image storage is not configured")
)
