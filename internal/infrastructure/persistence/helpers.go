package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// exists reports whether any row of model matches the condition
func exists(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// likePattern builds a case-insensitive substring pattern for use with
// LOWER(column) LIKE ?. LOWER/LIKE is used instead of ILIKE so the same
// query runs on SQLite.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
