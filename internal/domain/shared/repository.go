package shared

import "strings"

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// MaxPageSize caps page_size on list endpoints
const MaxPageSize = 100

// NewFilter builds a filter from list query parameters. A leading "-" on
// ordering sorts descending; an empty ordering keeps the repository default.
func NewFilter(page, pageSize int, ordering, search string) Filter {
	f := Filter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(search),
		Filters:  make(map[string]interface{}),
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}

	ordering = strings.TrimSpace(ordering)
	if field, ok := strings.CutPrefix(ordering, "-"); ok {
		f.OrderBy, f.OrderDir = field, "desc"
	} else if ordering != "" {
		f.OrderBy, f.OrderDir = ordering, "asc"
	}
	return f
}
