package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, customerID uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.PlaceOrder(customerID, cartWithLine(t, "2.50", 2))
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestOrderService_List_Visibility(t *testing.T) {
	ctx := context.Background()

	t.Run("customers only see their own orders", func(t *testing.T) {
		orders, customers := new(MockOrderRepository), new(MockCustomerRepository)
		userID := uuid.New()
		customer := customerFor(t, userID)
		customers.On("FindByUserID", ctx, userID).Return(customer, nil)

		ownFilter := mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters[order.FilterCustomerID] == customer.ID
		})
		orders.On("FindAll", ctx, ownFilter).Return([]order.Order{*placedOrder(t, customer.ID)}, nil)
		orders.On("Count", ctx, ownFilter).Return(int64(1), nil)

		svc := NewOrderService(orders, customers, nil, nil, nil)
		items, total, err := svc.List(ctx, Viewer{UserID: userID}, OrderListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, items, 1)
	})

	t.Run("staff see everything", func(t *testing.T) {
		orders, customers := new(MockOrderRepository), new(MockCustomerRepository)
		unscoped := mock.MatchedBy(func(f shared.Filter) bool {
			_, scoped := f.Filters[order.FilterCustomerID]
			return !scoped
		})
		orders.On("FindAll", ctx, unscoped).Return([]order.Order{}, nil)
		orders.On("Count", ctx, unscoped).Return(int64(0), nil)

		svc := NewOrderService(orders, customers, nil, nil, nil)
		_, _, err := svc.List(ctx, Viewer{UserID: uuid.New(), IsStaff: true}, OrderListFilter{})
		require.NoError(t, err)
		customers.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func TestOrderService_GetByID_HidesOtherCustomers(t *testing.T) {
	ctx := context.Background()
	orders, customers := new(MockOrderRepository), new(MockCustomerRepository)
	userID := uuid.New()
	o := placedOrder(t, uuid.New())

	orders.On("FindByID", ctx, o.ID).Return(o, nil)
	customers.On("FindByUserID", ctx, userID).Return(customerFor(t, userID), nil)

	svc := NewOrderService(orders, customers, nil, nil, nil)
	_, err := svc.GetByID(ctx, Viewer{UserID: userID}, o.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	resp, err := svc.GetByID(ctx, Viewer{UserID: userID, IsStaff: true}, o.ID)
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("5.00")))
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	ctx := mock.Anything
	orders := new(MockOrderRepository)
	publisher := &recordingPublisher{}
	o := placedOrder(t, uuid.New())

	orders.On("FindByID", ctx, o.ID).Return(o, nil)
	orders.On("SavePaymentStatus", ctx, o).Return(nil)

	svc := NewOrderService(orders, new(MockCustomerRepository), publisher, nil, nil)
	resp, err := svc.UpdatePaymentStatus(context.Background(), o.ID, UpdatePaymentStatusRequest{PaymentStatus: "C"})
	require.NoError(t, err)
	assert.Equal(t, "C", resp.PaymentStatus)
	assert.Equal(t, "Complete", resp.PaymentStatusLabel)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.EventTypePaymentStatusChanged, publisher.events[0].EventType())

	_, err = svc.UpdatePaymentStatus(context.Background(), o.ID, UpdatePaymentStatusRequest{PaymentStatus: "X"})
	require.Error(t, err)
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()
	orders := new(MockOrderRepository)
	publisher := &recordingPublisher{}
	id := uuid.New()
	orders.On("Delete", ctx, id).Return(nil)

	svc := NewOrderService(orders, new(MockCustomerRepository), publisher, nil, nil)
	require.NoError(t, svc.Delete(ctx, id))
	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.EventTypeOrderDeleted, publisher.events[0].EventType())
	assert.Equal(t, id, publisher.events[0].AggregateID())
}
