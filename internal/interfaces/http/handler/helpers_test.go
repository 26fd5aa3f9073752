package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/tests/testutil"
)

const api = "/api/v1"

func createCategory(t *testing.T, app *testutil.App, staff, title string) catalogapp.CategoryResponse {
	t.Helper()
	w := app.Do(t, http.MethodPost, api+"/categories", map[string]any{"title": title}, staff)
	testutil.AssertStatus(t, w, http.StatusCreated)
	return testutil.DecodeData[catalogapp.CategoryResponse](t, w)
}

func createProduct(t *testing.T, app *testutil.App, staff string, categoryID uuid.UUID, title, price string) catalogapp.ProductResponse {
	t.Helper()
	w := app.Do(t, http.MethodPost, api+"/products", map[string]any{
		"title":       title,
		"description": title + " description",
		"unit_price":  price,
		"inventory":   10,
		"category_id": categoryID,
	}, staff)
	testutil.AssertStatus(t, w, http.StatusCreated)
	return testutil.DecodeData[catalogapp.ProductResponse](t, w)
}

func createCart(t *testing.T, app *testutil.App) cartapp.CartResponse {
	t.Helper()
	w := app.Do(t, http.MethodPost, api+"/carts", nil, "")
	testutil.AssertStatus(t, w, http.StatusCreated)
	return testutil.DecodeData[cartapp.CartResponse](t, w)
}

func addCartItem(t *testing.T, app *testutil.App, cartID, productID uuid.UUID, quantity int) cartapp.CartItemResponse {
	t.Helper()
	w := app.Do(t, http.MethodPost, api+"/carts/"+cartID.String()+"/items", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)
	return testutil.DecodeData[cartapp.CartItemResponse](t, w)
}

func placeOrder(t *testing.T, app *testutil.App, token string, cartID uuid.UUID) orderapp.OrderResponse {
	t.Helper()
	w := app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": cartID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return testutil.DecodeData[orderapp.OrderResponse](t, w)
}

// shop is an app with one category and one product priced at 10.00
type shop struct {
	app      *testutil.App
	staff    string
	category catalogapp.CategoryResponse
	product  catalogapp.ProductResponse
}

func newShop(t *testing.T) shop {
	t.Helper()
	app := testutil.NewApp(t)
	staff := app.StaffToken(t)
	category := createCategory(t, app, staff, "Groceries")
	product := createProduct(t, app, staff, category.ID, "Coffee beans", "10.00")
	return shop{app: app, staff: staff, category: category, product: product}
}
