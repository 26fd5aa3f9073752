package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/csvimport"
)

const (
	maxImportRows   = 1000
	maxImportErrors = 100
)

// Product import columns. title, unit_price and category_id are required.
const (
	colTitle       = "title"
	colSlug        = "slug"
	colDescription = "description"
	colUnitPrice   = "unit_price"
	colInventory   = "inventory"
	colCategoryID  = "category_id"
)

var productImportRules = []csvimport.Rule{
	csvimport.Column(colTitle).Required().MaxLength(255).Build(),
	csvimport.Column(colSlug).MaxLength(255).Build(),
	csvimport.Column(colUnitPrice).Required().Decimal().Range(catalog.MinUnitPrice, catalog.MaxUnitPrice).Build(),
	csvimport.Column(colInventory).Int().Min(decimal.Zero).Build(),
	csvimport.Column(colCategoryID).Required().UUID().Build(),
}

// ErrImportFile wraps file level problems so the HTTP layer reports 400
var ErrImportFile = shared.NewDomainError("INVALID_IMPORT_FILE", "The uploaded file could not be read.")

// ProductImportResult reports a bulk import. Nothing is created unless
// every row is valid.
type ProductImportResult struct {
	TotalRows int                  `json:"total_rows"`
	Created   int                  `json:"created"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	// ErrorCount includes errors dropped past the reporting limit
	ErrorCount int               `json:"error_count"`
	Products   []ProductResponse `json:"products,omitempty"`
}

// Valid reports whether the file passed validation
func (r *ProductImportResult) Valid() bool {
	return r.ErrorCount == 0
}

// ImportProducts creates products from a CSV file. All rows are validated,
// including category references, before the first product is saved.
func (s *ProductService) ImportProducts(ctx context.Context, file io.Reader) (*ProductImportResult, error) {
	parser, err := csvimport.NewParser(file, csvimport.WithMaxRows(maxImportRows))
	if err != nil {
		return nil, importFileError(err)
	}
	if missing := parser.Missing(colTitle, colUnitPrice, colCategoryID); len(missing) > 0 {
		return nil, shared.NewDomainError(ErrImportFile.Code,
			"Missing required columns: "+strings.Join(missing, ", "))
	}

	errs := csvimport.NewErrors(maxImportErrors)
	rows, err := parser.ReadAll(errs)
	if err != nil {
		return nil, importFileError(err)
	}

	result := &ProductImportResult{TotalRows: len(rows)}
	products := make([]*catalog.Product, 0, len(rows))
	categories := make(map[uuid.UUID]bool)

	for _, row := range rows {
		if !csvimport.Check(row, productImportRules, errs) {
			continue
		}
		product, rowErr := s.productFromRow(ctx, row, categories)
		if rowErr != nil {
			var re csvimport.RowError
			if !errors.As(rowErr, &re) {
				return nil, rowErr
			}
			errs.Add(re)
			continue
		}
		products = append(products, product)
	}

	result.Errors = errs.Items()
	result.ErrorCount = errs.Total()
	if !result.Valid() {
		return result, nil
	}

	for _, product := range products {
		if err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Error("product import stopped",
				zap.Int("created", result.Created), zap.Error(err))
			return nil, err
		}
		s.publish(ctx, product)
		result.Created++
		result.Products = append(result.Products, ToProductResponse(product, ""))
	}

	s.logger.Info("products imported", zap.Int("created", result.Created))
	return result, nil
}

// productFromRow builds a product from a row that already passed the
// column rules. Expected problems come back as csvimport.RowError.
func (s *ProductService) productFromRow(ctx context.Context, row *csvimport.Row, known map[uuid.UUID]bool) (*catalog.Product, error) {
	categoryID := uuid.MustParse(row.Get(colCategoryID))
	exists, seen := known[categoryID]
	if !seen {
		var err error
		if exists, err = s.categoryRepo.ExistsByID(ctx, categoryID); err != nil {
			return nil, err
		}
		known[categoryID] = exists
	}
	if !exists {
		return nil, csvimport.RowError{
			Row:     row.Line,
			Column:  colCategoryID,
			Code:    csvimport.CodeReference,
			Message: errCategoryNotFound.Message,
			Value:   row.Get(colCategoryID),
		}
	}

	inventory := 0
	if raw := row.Get(colInventory); raw != "" {
		inventory, _ = strconv.Atoi(raw)
	}
	price := decimal.RequireFromString(row.Get(colUnitPrice))

	product, err := catalog.NewProduct(row.Get(colTitle), row.Get(colSlug), row.Get(colDescription), price, inventory, categoryID)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, csvimport.RowError{Row: row.Line, Column: domainErr.Field, Code: domainErr.Code, Message: domainErr.Message}
		}
		return nil, err
	}
	return product, nil
}

func importFileError(err error) error {
	switch {
	case errors.Is(err, csvimport.ErrTooManyRows):
		return shared.NewDomainError(ErrImportFile.Code,
			fmt.Sprintf("The file has more than %d rows.", maxImportRows))
	case errors.Is(err, csvimport.ErrEmptyFile),
		errors.Is(err, csvimport.ErrInvalidEncoding),
		errors.Is(err, csvimport.ErrMissingHeader):
		return shared.NewDomainError(ErrImportFile.Code, err.Error())
	default:
		return fmt.Errorf("read import file: %w", err)
	}
}
