package integration

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/tests/testutil"
)

const api = "/api/v1"

func newPostgresApp(t *testing.T) *testutil.App {
	t.Helper()
	tdb := NewTestDB(t)
	return testutil.NewAppOn(t, tdb.DB, 24*time.Hour)
}

func TestStorefrontAPI_CheckoutFlow(t *testing.T) {
	app := newPostgresApp(t)
	staff := app.StaffToken(t)
	buyer := app.RegisterCustomer(t, "buyer")

	w := app.Do(t, http.MethodPost, api+"/categories", map[string]any{"title": "Bakery"}, staff)
	testutil.AssertStatus(t, w, http.StatusCreated)
	category := testutil.DecodeData[catalogapp.CategoryResponse](t, w)

	w = app.Do(t, http.MethodPost, api+"/products", map[string]any{
		"title":       "Sourdough Loaf",
		"description": "Naturally leavened",
		"unit_price":  "6.40",
		"inventory":   12,
		"category_id": category.ID,
	}, staff)
	testutil.AssertStatus(t, w, http.StatusCreated)
	product := testutil.DecodeData[catalogapp.ProductResponse](t, w)
	assert.Equal(t, "sourdough-loaf", product.Slug)

	w = app.Do(t, http.MethodPost, api+"/carts", nil, "")
	testutil.AssertStatus(t, w, http.StatusCreated)
	c := testutil.DecodeData[cartapp.CartResponse](t, w)

	for range 2 {
		w = app.Do(t, http.MethodPost, api+"/carts/"+c.ID.String()+"/items",
			map[string]any{"product_id": product.ID, "quantity": 2}, "")
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w = app.Do(t, http.MethodGet, api+"/carts/"+c.ID.String(), nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	c = testutil.DecodeData[cartapp.CartResponse](t, w)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("25.60").Equal(c.TotalPrice))

	w = app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": c.ID}, buyer.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)
	placed := testutil.DecodeData[orderapp.OrderResponse](t, w)
	assert.Equal(t, "P", placed.PaymentStatus)
	assert.True(t, decimal.RequireFromString("25.60").Equal(placed.TotalPrice))

	t.Run("cart is gone", func(t *testing.T) {
		w := app.Do(t, http.MethodGet, api+"/carts/"+c.ID.String(), nil, "")
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("ordered product is protected", func(t *testing.T) {
		w := app.Do(t, http.MethodDelete, api+"/products/"+product.ID.String(), nil, staff)
		testutil.AssertError(t, w, http.StatusMethodNotAllowed, "PRODUCT_HAS_ORDERS")
	})

	t.Run("category with products is protected", func(t *testing.T) {
		w := app.Do(t, http.MethodDelete, api+"/categories/"+category.ID.String(), nil, staff)
		testutil.AssertError(t, w, http.StatusMethodNotAllowed, "CATEGORY_HAS_PRODUCTS")
	})

	t.Run("staff mark the order paid", func(t *testing.T) {
		w := app.Do(t, http.MethodPatch, api+"/orders/"+placed.ID.String(), map[string]any{"payment_status": "C"}, staff)
		testutil.AssertStatus(t, w, http.StatusOK)

		w = app.Do(t, http.MethodGet, api+"/orders/"+placed.ID.String(), nil, buyer.Token)
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Equal(t, "Complete", testutil.DecodeData[orderapp.OrderResponse](t, w).PaymentStatusLabel)
	})
}

func TestStorefrontAPI_Security(t *testing.T) {
	app := newPostgresApp(t)
	staff := app.StaffToken(t)
	buyer := app.RegisterCustomer(t, "buyer")

	t.Run("search is safe against injection", func(t *testing.T) {
		w := app.Do(t, http.MethodGet, api+"/products?search=%27%3B%20DROP%20TABLE%20products%3B%20--", nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Empty(t, testutil.DecodeData[[]catalogapp.ProductResponse](t, w))

		w = app.Do(t, http.MethodGet, api+"/products", nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("unknown ordering falls back", func(t *testing.T) {
		w := app.Do(t, http.MethodGet, api+"/products?ordering=id;DELETE", nil, "")
		assert.Less(t, w.Code, 500, w.Body.String())
	})

	t.Run("a forged signature is rejected", func(t *testing.T) {
		customerParts := strings.Split(buyer.Token, ".")
		staffParts := strings.Split(staff, ".")
		require.Len(t, customerParts, 3)
		require.Len(t, staffParts, 3)
		forged := customerParts[0] + "." + staffParts[1] + "." + customerParts[2]

		w := app.Do(t, http.MethodPost, api+"/categories", map[string]any{"title": "Forged"}, forged)
		testutil.AssertError(t, w, http.StatusUnauthorized, "TOKEN_INVALID")
	})

	t.Run("customers cannot reach staff routes", func(t *testing.T) {
		w := app.Do(t, http.MethodPost, api+"/categories", map[string]any{"title": "Nope"}, buyer.Token)
		testutil.AssertError(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("security headers are set", func(t *testing.T) {
		w := app.Do(t, http.MethodGet, "/health", nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("oversized bodies are refused", func(t *testing.T) {
		body := map[string]any{"title": strings.Repeat("x", testutil.MaxTestBodyBytes)}
		w := app.Do(t, http.MethodPost, api+"/categories", body, staff)
		testutil.AssertError(t, w, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE")
	})
}
