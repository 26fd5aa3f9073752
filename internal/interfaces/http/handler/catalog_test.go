package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/tests/testutil"
)

func TestProductHandler_PriceWithTax(t *testing.T) {
	s := newShop(t)

	assert.True(t, decimal.RequireFromString("11.00").Equal(s.product.PriceWithTax), s.product.PriceWithTax.String())
	assert.Equal(t, "coffee-beans", s.product.Slug)

	w := s.app.Do(t, http.MethodGet, api+"/products/"+s.product.ID.String(), nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	got := testutil.DecodeData[catalogapp.ProductResponse](t, w)
	assert.True(t, decimal.RequireFromString("11.00").Equal(got.PriceWithTax))
}

func TestProductHandler_Get(t *testing.T) {
	s := newShop(t)

	t.Run("unknown id", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products/"+uuid.NewString(), nil, "")
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products/not-a-uuid", nil, "")
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

func TestProductHandler_List(t *testing.T) {
	s := newShop(t)
	other := createCategory(t, s.app, s.staff, "Books")
	createProduct(t, s.app, s.staff, other.ID, "Cheap novel", "5.00")
	createProduct(t, s.app, s.staff, other.ID, "Atlas", "80.00")

	t.Run("all products with pagination meta", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products?page_size=2", nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)
		env := testutil.DecodeEnvelope(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(3), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.PageSize)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})

	t.Run("filter by category", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products?category_id="+other.ID.String(), nil, "")
		products := testutil.DecodeData[[]catalogapp.ProductResponse](t, w)
		assert.Len(t, products, 2)
	})

	t.Run("price range and ordering", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products?unit_price__gt=6&unit_price__lt=100&ordering=-unit_price", nil, "")
		products := testutil.DecodeData[[]catalogapp.ProductResponse](t, w)
		require.Len(t, products, 2)
		assert.Equal(t, "Atlas", products[0].Title)
		assert.Equal(t, "Coffee beans", products[1].Title)
	})

	t.Run("search matches title", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products?search=novel", nil, "")
		products := testutil.DecodeData[[]catalogapp.ProductResponse](t, w)
		require.Len(t, products, 1)
		assert.Equal(t, "Cheap novel", products[0].Title)
	})

	t.Run("malformed filter", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products?unit_price__gt=cheap", nil, "")
		info := testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		require.NotEmpty(t, info.Details)
		assert.Equal(t, "unit_price__gt", info.Details[0].Field)
	})
}

func TestProductHandler_Create(t *testing.T) {
	s := newShop(t)

	t.Run("missing title", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/products", map[string]any{
			"unit_price":  "3.00",
			"category_id": s.category.ID,
		}, s.staff)
		info := testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		require.Len(t, info.Details, 1)
		assert.Equal(t, "title", info.Details[0].Field)
		assert.Equal(t, "This field is required.", info.Details[0].Message)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/products", map[string]any{
			"title":       "Tea",
			"unit_price":  "3.00",
			"category_id": uuid.New(),
		}, s.staff)
		testutil.AssertError(t, w, http.StatusBadRequest, "CATEGORY_NOT_FOUND")
	})

	t.Run("price below one", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/products", map[string]any{
			"title":       "Tea",
			"unit_price":  "0.50",
			"category_id": s.category.ID,
		}, s.staff)
		testutil.AssertError(t, w, http.StatusBadRequest, "INVALID_PRICE")
	})

	t.Run("customers cannot write the catalog", func(t *testing.T) {
		c := s.app.RegisterCustomer(t, "shopper")
		w := s.app.Do(t, http.MethodPost, api+"/products", map[string]any{
			"title":       "Tea",
			"unit_price":  "3.00",
			"category_id": s.category.ID,
		}, c.Token)
		testutil.AssertError(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("anonymous writes are unauthorized", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/products", map[string]any{"title": "Tea"}, "")
		testutil.AssertError(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func TestProductHandler_Update(t *testing.T) {
	s := newShop(t)

	w := s.app.Do(t, http.MethodPatch, api+"/products/"+s.product.ID.String(), map[string]any{
		"unit_price": "20.00",
	}, s.staff)
	testutil.AssertStatus(t, w, http.StatusOK)
	got := testutil.DecodeData[catalogapp.ProductResponse](t, w)

	assert.Equal(t, "Coffee beans", got.Title)
	assert.True(t, decimal.RequireFromString("20").Equal(got.UnitPrice))
	assert.True(t, decimal.RequireFromString("22").Equal(got.PriceWithTax))
}

func TestProductHandler_DeleteGuard(t *testing.T) {
	s := newShop(t)
	customer := s.app.RegisterCustomer(t, "buyer")

	c := createCart(t, s.app)
	addCartItem(t, s.app, c.ID, s.product.ID, 1)
	placeOrder(t, s.app, customer.Token, c.ID)

	w := s.app.Do(t, http.MethodDelete, api+"/products/"+s.product.ID.String(), nil, s.staff)
	info := testutil.AssertError(t, w, http.StatusMethodNotAllowed, "PRODUCT_HAS_ORDERS")
	assert.Equal(t, "Product cannot be deleted because it is associated with an order item.", info.Message)

	w = s.app.Do(t, http.MethodGet, api+"/products/"+s.product.ID.String(), nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestCategoryHandler_DeleteGuard(t *testing.T) {
	s := newShop(t)
	path := api + "/categories/" + s.category.ID.String()

	w := s.app.Do(t, http.MethodDelete, path, nil, s.staff)
	info := testutil.AssertError(t, w, http.StatusMethodNotAllowed, "CATEGORY_HAS_PRODUCTS")
	assert.Equal(t, "Category cannot be deleted because it includes one or more products.", info.Message)

	w = s.app.Do(t, http.MethodDelete, api+"/products/"+s.product.ID.String(), nil, s.staff)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = s.app.Do(t, http.MethodDelete, path, nil, s.staff)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = s.app.Do(t, http.MethodGet, path, nil, "")
	testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestCategoryHandler_ProductCount(t *testing.T) {
	s := newShop(t)
	createProduct(t, s.app, s.staff, s.category.ID, "Green tea", "4.50")

	w := s.app.Do(t, http.MethodGet, api+"/categories/"+s.category.ID.String(), nil, "")
	got := testutil.DecodeData[catalogapp.CategoryResponse](t, w)
	assert.Equal(t, int64(2), got.ProductCount)

	w = s.app.Do(t, http.MethodPatch, api+"/categories/"+s.category.ID.String(), map[string]any{"title": "Pantry"}, s.staff)
	testutil.AssertStatus(t, w, http.StatusOK)
	got = testutil.DecodeData[catalogapp.CategoryResponse](t, w)
	assert.Equal(t, "Pantry", got.Title)
}

func TestReviewHandler(t *testing.T) {
	s := newShop(t)
	base := api + "/products/" + s.product.ID.String() + "/reviews"

	w := s.app.Do(t, http.MethodPost, base, map[string]any{"name": "Sam", "description": "Smooth"}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)
	review := testutil.DecodeData[catalogapp.ReviewResponse](t, w)
	assert.Equal(t, s.product.ID, review.ProductID)

	w = s.app.Do(t, http.MethodGet, base, nil, "")
	reviews := testutil.DecodeData[[]catalogapp.ReviewResponse](t, w)
	require.Len(t, reviews, 1)

	w = s.app.Do(t, http.MethodPatch, base+"/"+review.ID.String(), map[string]any{"description": "Bitter"}, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Bitter", testutil.DecodeData[catalogapp.ReviewResponse](t, w).Description)

	w = s.app.Do(t, http.MethodDelete, base+"/"+review.ID.String(), nil, "")
	testutil.AssertStatus(t, w, http.StatusNoContent)

	t.Run("blank name", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, base, map[string]any{"description": "No name"}, "")
		testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("unknown product", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/products/"+uuid.NewString()+"/reviews", nil, "")
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

func TestPromotionHandler_AttachToProduct(t *testing.T) {
	s := newShop(t)

	w := s.app.Do(t, http.MethodPost, api+"/promotions", map[string]any{"description": "Summer sale", "discount": "0.15"}, s.staff)
	testutil.AssertStatus(t, w, http.StatusCreated)
	promo := testutil.DecodeData[catalogapp.PromotionResponse](t, w)

	link := api + "/products/" + s.product.ID.String() + "/promotions/" + promo.ID.String()
	w = s.app.Do(t, http.MethodPost, link, nil, s.staff)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = s.app.Do(t, http.MethodGet, api+"/products/"+s.product.ID.String(), nil, "")
	product := testutil.DecodeData[catalogapp.ProductResponse](t, w)
	require.Len(t, product.Promotions, 1)
	assert.Equal(t, "Summer sale", product.Promotions[0].Description)

	w = s.app.Do(t, http.MethodDelete, link, nil, s.staff)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = s.app.Do(t, http.MethodGet, api+"/products/"+s.product.ID.String(), nil, "")
	assert.Empty(t, testutil.DecodeData[catalogapp.ProductResponse](t, w).Promotions)
}

func TestProductHandler_RequestImageUpload(t *testing.T) {
	s := newShop(t)
	path := api + "/products/" + s.product.ID.String() + "/image"

	w := s.app.Do(t, http.MethodPost, path, map[string]any{"file_name": "beans.png", "content_type": "image/png"}, s.staff)
	testutil.AssertStatus(t, w, http.StatusOK)
	upload := testutil.DecodeData[catalogapp.ImageUploadResponse](t, w)
	assert.NotEmpty(t, upload.UploadURL)
	assert.Contains(t, upload.UploadURL, upload.Key)

	w = s.app.Do(t, http.MethodGet, api+"/products/"+s.product.ID.String(), nil, "")
	product := testutil.DecodeData[catalogapp.ProductResponse](t, w)
	assert.Contains(t, product.ImageURL, upload.Key)

	t.Run("rejects non-image content", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, path, map[string]any{"file_name": "x.exe", "content_type": "application/octet-stream"}, s.staff)
		testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestProductHandler_Import(t *testing.T) {
	s := newShop(t)
	path := api + "/products/import"

	t.Run("staff only", func(t *testing.T) {
		c := s.app.RegisterCustomer(t, "jane")
		w := s.app.Upload(t, path, "file", "products.csv", []byte("title\nMug\n"), c.Token)
		testutil.AssertError(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("file is required", func(t *testing.T) {
		w := s.app.Upload(t, path, "upload", "products.csv", []byte("title\n"), s.staff)
		info := testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		require.NotEmpty(t, info.Details)
		assert.Equal(t, "file", info.Details[0].Field)
	})

	t.Run("missing columns", func(t *testing.T) {
		w := s.app.Upload(t, path, "file", "products.csv", []byte("title,inventory\nMug,3\n"), s.staff)
		info := testutil.AssertError(t, w, http.StatusBadRequest, "INVALID_IMPORT_FILE")
		assert.Contains(t, info.Message, "unit_price")
	})

	t.Run("one bad row rejects the file", func(t *testing.T) {
		csv := "title,unit_price,inventory,category_id\n" +
			"Mug,9.50,3," + s.category.ID.String() + "\n" +
			"Plate,free,3," + s.category.ID.String() + "\n"
		w := s.app.Upload(t, path, "file", "products.csv", []byte(csv), s.staff)
		testutil.AssertError(t, w, http.StatusBadRequest, "IMPORT_REJECTED")

		var result catalogapp.ProductImportResult
		require.NoError(t, json.Unmarshal(testutil.DecodeEnvelope(t, w).Data, &result))
		assert.Equal(t, 0, result.Created)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 3, result.Errors[0].Row)
		assert.Equal(t, "unit_price", result.Errors[0].Column)

		w = s.app.Do(t, http.MethodGet, api+"/products", nil, "")
		assert.Len(t, testutil.DecodeData[[]catalogapp.ProductResponse](t, w), 1)
	})

	t.Run("creates every row", func(t *testing.T) {
		csv := "title,unit_price,inventory,category_id,description\n" +
			"Mug,9.50,3," + s.category.ID.String() + ",Stoneware\n" +
			"Plate,4.00,," + s.category.ID.String() + ",\n"
		w := s.app.Upload(t, path, "file", "products.csv", []byte(csv), s.staff)
		testutil.AssertStatus(t, w, http.StatusCreated)

		result := testutil.DecodeData[catalogapp.ProductImportResult](t, w)
		assert.Equal(t, 2, result.TotalRows)
		assert.Equal(t, 2, result.Created)
		require.Len(t, result.Products, 2)
		assert.Equal(t, "mug", result.Products[0].Slug)
		assert.Equal(t, 0, result.Products[1].Inventory)

		w = s.app.Do(t, http.MethodGet, api+"/products?category_id="+s.category.ID.String(), nil, "")
		assert.Len(t, testutil.DecodeData[[]catalogapp.ProductResponse](t, w), 3)
	})
}
