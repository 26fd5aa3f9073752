package persistence

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" when the input is empty or unrecognised.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField resolves a public sort key to a column using the
// whitelist. Unknown or empty keys resolve to defaultColumn.
func ValidateSortField(sortField string, allowed map[string]string, defaultColumn string) string {
	if column, ok := allowed[strings.TrimSpace(sortField)]; ok {
		return column
	}
	return defaultColumn
}

// CategorySortFields maps sort keys to category columns
var CategorySortFields = map[string]string{
	"title":         "categories.title",
	"created_at":    "categories.created_at",
	"product_count": "product_count",
}

// ProductSortFields maps sort keys to product columns
var ProductSortFields = map[string]string{
	"title":       "products.title",
	"unit_price":  "products.unit_price",
	"last_update": "products.updated_at",
	"inventory":   "products.inventory",
	"created_at":  "products.created_at",
}

// PromotionSortFields maps sort keys to promotion columns
var PromotionSortFields = map[string]string{
	"description": "description",
	"discount":    "discount",
	"created_at":  "created_at",
}

// CustomerSortFields maps sort keys to customer columns
var CustomerSortFields = map[string]string{
	"membership": "customers.membership",
	"created_at": "customers.created_at",
}

// OrderSortFields maps sort keys to order columns
var OrderSortFields = map[string]string{
	"placed_at":      "placed_at",
	"payment_status": "payment_status",
}

// paginate applies ordering and offset/limit from the filter
func paginate(query *gorm.DB, filter shared.Filter, allowed map[string]string, defaultColumn string) *gorm.DB {
	column := ValidateSortField(filter.OrderBy, allowed, defaultColumn)
	query = query.Order(column + " " + ValidateSortOrder(filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}
