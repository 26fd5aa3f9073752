package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) MergeItem(ctx context.Context, item *cart.CartItem, delta int) error {
	return m.Called(ctx, item, delta).Error(0)
}

func (m *MockCartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return m.Called(ctx, cartID, itemID).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(carts *MockCartRepository, products *MockProductLookup) *CartService {
	return NewCartService(carts, products, 30*24*time.Hour, WithClock(func() time.Time { return fixedNow }))
}

func freshCart() *cart.Cart {
	c := cart.NewCart()
	c.CreatedAt = fixedNow.Add(-time.Hour)
	return c
}

func TestCartService_Create(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCartRepository)
	carts.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil)

	resp, err := newService(carts, new(MockProductLookup)).Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.TotalPrice.IsZero())
}

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("computes totals", func(t *testing.T) {
		carts := new(MockCartRepository)
		c := freshCart()
		product, err := catalog.NewProduct("Mug", "", "", decimal.RequireFromString("4.50"), 3, uuid.New())
		require.NoError(t, err)
		item, err := c.AddItem(product.ID, 2)
		require.NoError(t, err)
		item.Product = product
		carts.On("FindByID", ctx, c.ID).Return(c, nil)

		resp, err := newService(carts, new(MockProductLookup)).Get(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Mug", resp.Items[0].Product.Title)
		assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.RequireFromString("9.00")))
		assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("9.00")))
	})

	t.Run("expired carts are not found", func(t *testing.T) {
		carts := new(MockCartRepository)
		c := freshCart()
		c.CreatedAt = fixedNow.Add(-31 * 24 * time.Hour)
		carts.On("FindByID", ctx, c.ID).Return(c, nil)

		_, err := newService(carts, new(MockProductLookup)).Get(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("missing cart", func(t *testing.T) {
		carts := new(MockCartRepository)
		id := uuid.New()
		carts.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := newService(carts, new(MockProductLookup)).Get(ctx, id)
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product is a field error", func(t *testing.T) {
		carts, products := new(MockCartRepository), new(MockProductLookup)
		c := freshCart()
		productID := uuid.New()
		carts.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("ExistsByID", ctx, productID).Return(false, nil)

		_, err := newService(carts, products).AddItem(ctx, c.ID, AddCartItemRequest{ProductID: productID, Quantity: 1})
		assert.ErrorIs(t, err, errProductNotFound)
		carts.AssertNotCalled(t, "MergeItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("merges into the existing line", func(t *testing.T) {
		carts, products := new(MockCartRepository), new(MockProductLookup)
		c := freshCart()
		productID := uuid.New()
		existing, err := c.AddItem(productID, 2)
		require.NoError(t, err)
		existingID := existing.ID

		carts.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("ExistsByID", ctx, productID).Return(true, nil)
		carts.On("MergeItem", ctx, mock.AnythingOfType("*cart.CartItem"), 3).Return(nil)

		resp, err := newService(carts, products).AddItem(ctx, c.ID, AddCartItemRequest{ProductID: productID, Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, existingID, resp.ID)
		assert.Equal(t, 5, resp.Quantity)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		carts, products := new(MockCartRepository), new(MockProductLookup)
		c := freshCart()
		productID := uuid.New()
		carts.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("ExistsByID", ctx, productID).Return(true, nil)

		_, err := newService(carts, products).AddItem(ctx, c.ID, AddCartItemRequest{ProductID: productID, Quantity: 0})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "quantity", domainErr.Field)
	})
}

func TestCartService_UpdateAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCartRepository)
	c := freshCart()
	item, err := c.AddItem(uuid.New(), 1)
	require.NoError(t, err)
	itemID := item.ID

	carts.On("FindByID", ctx, c.ID).Return(c, nil)
	carts.On("SaveItem", ctx, mock.AnythingOfType("*cart.CartItem")).Return(nil)
	carts.On("DeleteItem", ctx, c.ID, itemID).Return(nil)

	svc := newService(carts, new(MockProductLookup))

	resp, err := svc.UpdateItem(ctx, c.ID, itemID, UpdateCartItemRequest{Quantity: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Quantity)

	_, err = svc.GetItem(ctx, c.ID, uuid.New())
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)

	require.NoError(t, svc.RemoveItem(ctx, c.ID, itemID))
	carts.AssertExpectations(t)
}

func TestCartService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCartRepository)
	carts.On("DeleteCreatedBefore", ctx, fixedNow.Add(-30*24*time.Hour)).Return(int64(4), nil)

	n, err := newService(carts, new(MockProductLookup)).PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	forever := NewCartService(carts, new(MockProductLookup), 0)
	n, err = forever.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	carts.AssertNumberOfCalls(t, "DeleteCreatedBefore", 1)
}
