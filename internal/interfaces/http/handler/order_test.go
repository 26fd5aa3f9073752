package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/backend/internal/application/cart"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/tests/testutil"
)

func TestOrderHandler_Place(t *testing.T) {
	s := newShop(t)
	customer := s.app.RegisterCustomer(t, "buyer")
	placed := testutil.NewRecordingHandler(order.EventTypeOrderPlaced)
	s.app.Bus.Subscribe(placed)

	c := createCart(t, s.app)
	addCartItem(t, s.app, c.ID, s.product.ID, 3)

	got := placeOrder(t, s.app, customer.Token, c.ID)
	assert.Equal(t, "P", got.PaymentStatus)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("10").Equal(got.Items[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("30").Equal(got.TotalPrice))
	assert.Len(t, placed.Handled(), 1)

	t.Run("cart is consumed", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/carts/"+c.ID.String(), nil, "")
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("order keeps the price paid", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPatch, api+"/products/"+s.product.ID.String(), map[string]any{"unit_price": "99.00"}, s.staff)
		testutil.AssertStatus(t, w, http.StatusOK)

		w = s.app.Do(t, http.MethodGet, api+"/orders/"+got.ID.String(), nil, customer.Token)
		testutil.AssertStatus(t, w, http.StatusOK)
		reloaded := testutil.DecodeData[orderapp.OrderResponse](t, w)
		require.Len(t, reloaded.Items, 1)
		assert.True(t, decimal.RequireFromString("10").Equal(reloaded.Items[0].UnitPrice))
	})
}

func TestOrderHandler_PlaceRejections(t *testing.T) {
	s := newShop(t)
	customer := s.app.RegisterCustomer(t, "buyer")

	t.Run("anonymous", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": uuid.New()}, "")
		testutil.AssertError(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("unknown cart", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": uuid.New()}, customer.Token)
		info := testutil.AssertError(t, w, http.StatusBadRequest, "CART_NOT_FOUND")
		require.Len(t, info.Details, 1)
		assert.Equal(t, "cart_id", info.Details[0].Field)
		assert.Equal(t, "No cart with the given ID was found.", info.Details[0].Message)
	})

	t.Run("empty cart", func(t *testing.T) {
		c := createCart(t, s.app)
		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": c.ID}, customer.Token)
		info := testutil.AssertError(t, w, http.StatusBadRequest, "CART_EMPTY")
		assert.Equal(t, "The cart is empty.", info.Details[0].Message)
	})

	t.Run("missing cart id", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{}, customer.Token)
		testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("account without a customer profile rolls back", func(t *testing.T) {
		c := createCart(t, s.app)
		addCartItem(t, s.app, c.ID, s.product.ID, 1)

		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": c.ID}, s.staff)
		testutil.AssertError(t, w, http.StatusNotFound, "CUSTOMER_NOT_FOUND")

		w = s.app.Do(t, http.MethodGet, api+"/carts/"+c.ID.String(), nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Len(t, testutil.DecodeData[cartapp.CartResponse](t, w).Items, 1)

		var orders int64
		require.NoError(t, s.app.DB.Table("orders").Count(&orders).Error)
		assert.Zero(t, orders)
	})
}

func TestOrderHandler_IdempotencyKey(t *testing.T) {
	s := newShop(t)
	customer := s.app.RegisterCustomer(t, "buyer")
	const key = "9b1deb4d-checkout"

	place := func(cartID uuid.UUID) int {
		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": cartID}, customer.Token,
			"Idempotency-Key", key)
		return w.Code
	}

	t.Run("failed checkout releases the key", func(t *testing.T) {
		empty := createCart(t, s.app)
		assert.Equal(t, http.StatusBadRequest, place(empty.ID))
	})

	c := createCart(t, s.app)
	addCartItem(t, s.app, c.ID, s.product.ID, 1)
	assert.Equal(t, http.StatusCreated, place(c.ID))

	t.Run("replay is rejected", func(t *testing.T) {
		again := createCart(t, s.app)
		addCartItem(t, s.app, again.ID, s.product.ID, 1)

		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": again.ID}, customer.Token,
			"Idempotency-Key", key)
		testutil.AssertError(t, w, http.StatusConflict, "DUPLICATE_REQUEST")

		w = s.app.Do(t, http.MethodGet, api+"/orders", nil, customer.Token)
		env := testutil.DecodeEnvelope(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(1), env.Meta.Total)
	})

	t.Run("keys are scoped to the user", func(t *testing.T) {
		other := s.app.RegisterCustomer(t, "other")
		c := createCart(t, s.app)
		addCartItem(t, s.app, c.ID, s.product.ID, 1)

		w := s.app.Do(t, http.MethodPost, api+"/orders", map[string]any{"cart_id": c.ID}, other.Token,
			"Idempotency-Key", key)
		testutil.AssertStatus(t, w, http.StatusCreated)
	})
}

func TestOrderHandler_Visibility(t *testing.T) {
	s := newShop(t)
	alice := s.app.RegisterCustomer(t, "alice")
	bob := s.app.RegisterCustomer(t, "bob")

	checkout := func(token string) orderapp.OrderResponse {
		c := createCart(t, s.app)
		addCartItem(t, s.app, c.ID, s.product.ID, 1)
		return placeOrder(t, s.app, token, c.ID)
	}
	aliceOrder := checkout(alice.Token)
	checkout(bob.Token)

	t.Run("customers see only their own orders", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/orders", nil, alice.Token)
		orders := testutil.DecodeData[[]orderapp.OrderResponse](t, w)
		require.Len(t, orders, 1)
		assert.Equal(t, aliceOrder.ID, orders[0].ID)

		w = s.app.Do(t, http.MethodGet, api+"/orders/"+aliceOrder.ID.String(), nil, bob.Token)
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("staff see every order", func(t *testing.T) {
		w := s.app.Do(t, http.MethodGet, api+"/orders", nil, s.staff)
		orders := testutil.DecodeData[[]orderapp.OrderResponse](t, w)
		assert.Len(t, orders, 2)
	})
}

func TestOrderHandler_StaffOperations(t *testing.T) {
	s := newShop(t)
	customer := s.app.RegisterCustomer(t, "buyer")
	c := createCart(t, s.app)
	addCartItem(t, s.app, c.ID, s.product.ID, 1)
	placed := placeOrder(t, s.app, customer.Token, c.ID)
	path := api + "/orders/" + placed.ID.String()

	t.Run("customers cannot change payment status", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPatch, path, map[string]any{"payment_status": "C"}, customer.Token)
		testutil.AssertError(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("unknown status", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPatch, path, map[string]any{"payment_status": "X"}, s.staff)
		testutil.AssertError(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("staff complete the payment", func(t *testing.T) {
		w := s.app.Do(t, http.MethodPatch, path, map[string]any{"payment_status": "C"}, s.staff)
		testutil.AssertStatus(t, w, http.StatusOK)
		got := testutil.DecodeData[orderapp.OrderResponse](t, w)
		assert.Equal(t, "C", got.PaymentStatus)
		assert.Equal(t, "Complete", got.PaymentStatusLabel)
	})

	t.Run("staff delete the order", func(t *testing.T) {
		w := s.app.Do(t, http.MethodDelete, path, nil, s.staff)
		testutil.AssertStatus(t, w, http.StatusNoContent)

		w = s.app.Do(t, http.MethodGet, path, nil, s.staff)
		testutil.AssertError(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}
