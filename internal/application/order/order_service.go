package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Viewer identifies who is asking. Staff see every order; everyone else
// only the orders of their own customer profile.
type Viewer struct {
	UserID  uuid.UUID
	IsStaff bool
}

// OrderService reads and administers placed orders
type OrderService struct {
	orderRepo    order.OrderRepository
	customerRepo identity.CustomerRepository
	publisher    shared.EventPublisher
	metrics      *telemetry.BusinessMetrics
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	customerRepo identity.CustomerRepository,
	publisher shared.EventPublisher,
	metrics *telemetry.BusinessMetrics,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// List returns the orders visible to the viewer, newest first by default
func (s *OrderService) List(ctx context.Context, viewer Viewer, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.Ordering, "")
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}

	if !viewer.IsStaff {
		customer, err := s.customerRepo.FindByUserID(ctx, viewer.UserID)
		if errors.Is(err, shared.ErrNotFound) {
			return []OrderResponse{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters[order.FilterCustomerID] = customer.ID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = ToOrderResponse(&orders[i])
	}
	return items, total, nil
}

// GetByID returns an order if the viewer may see it. Orders of other
// customers are reported as not found.
func (s *OrderService) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !viewer.IsStaff {
		customer, err := s.customerRepo.FindByUserID(ctx, viewer.UserID)
		if errors.Is(err, shared.ErrNotFound) {
			return nil, order.ErrOrderNotFound
		}
		if err != nil {
			return nil, err
		}
		if customer.ID != o.CustomerID {
			return nil, order.ErrOrderNotFound
		}
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// UpdatePaymentStatus changes the payment status of an order
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req UpdatePaymentStatusRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_payment_status")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, id.String(),
		telemetry.SpanAttrPaymentStatus, req.PaymentStatus,
	)

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	status := order.PaymentStatus(req.PaymentStatus)
	if err := o.UpdatePaymentStatus(status); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.orderRepo.SavePaymentStatus(ctx, o); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.metrics.RecordPaymentUpdate(ctx, string(status))

	if err := shared.PublishDomainEvents(ctx, s.publisher, o); err != nil {
		s.logger.Warn("failed to publish payment status event",
			zap.String("order_id", id.String()), zap.Error(err))
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Delete removes an order and its lines
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, order.NewOrderDeletedEvent(id)); err != nil {
			s.logger.Warn("failed to publish order deleted event",
				zap.String("order_id", id.String()), zap.Error(err))
		}
	}
	return nil
}
