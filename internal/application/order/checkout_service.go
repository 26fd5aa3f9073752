package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Checkout failure outcomes reported on the business metrics
const (
	outcomeCartNotFound     = "cart_not_found"
	outcomeCartEmpty        = "cart_empty"
	outcomeCustomerNotFound = "customer_not_found"
	outcomeDuplicate        = "duplicate"
	outcomeError            = "error"
)

// ErrDuplicateRequest is returned when an Idempotency-Key is replayed
var ErrDuplicateRequest = shared.NewDomainError("DUPLICATE_REQUEST",
	"A request with this Idempotency-Key was already processed")

// CheckoutService turns carts into orders
type CheckoutService struct {
	tx          order.CheckoutTransactor
	idempotency shared.IdempotencyStore
	idemTTL     time.Duration
	publisher   shared.EventPublisher
	metrics     *telemetry.BusinessMetrics
	logger      *zap.Logger
	cartTTL     time.Duration
	now         func() time.Time
}

// CheckoutOption configures a CheckoutService
type CheckoutOption func(*CheckoutService)

// WithIdempotency enables Idempotency-Key handling
func WithIdempotency(store shared.IdempotencyStore, ttl time.Duration) CheckoutOption {
	return func(s *CheckoutService) {
		s.idempotency = store
		if ttl > 0 {
			s.idemTTL = ttl
		}
	}
}

// WithCheckoutMetrics records placed orders and failures
func WithCheckoutMetrics(metrics *telemetry.BusinessMetrics) CheckoutOption {
	return func(s *CheckoutService) {
		s.metrics = metrics
	}
}

// WithCartTTL makes carts older than ttl unusable for checkout, matching
// what the cart endpoints report
func WithCartTTL(ttl time.Duration) CheckoutOption {
	return func(s *CheckoutService) {
		s.cartTTL = ttl
	}
}

// WithCheckoutClock overrides the time source
func WithCheckoutClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) {
		s.now = now
	}
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(tx order.CheckoutTransactor, publisher shared.EventPublisher, logger *zap.Logger, opts ...CheckoutOption) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CheckoutService{
		tx:        tx,
		idemTTL:   shared.DefaultIdempotencyConfig().TTL,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder converts the cart into an order for the customer linked to
// userID. Loading the customer, writing the order and deleting the cart
// happen in one transaction. idempotencyKey may be empty.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest, idempotencyKey string) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "place")
	defer span.End()

	telemetry.SetAttributes(span, telemetry.SpanAttrCartID, req.CartID.String())

	key := ""
	if idempotencyKey != "" && s.idempotency != nil {
		key = "checkout:" + userID.String() + ":" + idempotencyKey
		claimed, err := s.idempotency.MarkProcessed(ctx, key, s.idemTTL)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		if !claimed {
			s.metrics.RecordCheckoutFailure(ctx, outcomeDuplicate)
			telemetry.RecordError(span, ErrDuplicateRequest)
			return nil, ErrDuplicateRequest
		}
	}

	var placed *order.Order
	err := s.tx.WithinTx(ctx, func(repos order.CheckoutRepositories) error {
		c, err := repos.Carts().FindByID(ctx, req.CartID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return order.ErrCartNotFound
			}
			return err
		}
		if c.IsExpired(s.cartTTL, s.now()) {
			return order.ErrCartNotFound
		}
		if c.IsEmpty() {
			return order.ErrCartEmpty
		}

		customer, err := repos.Customers().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return identity.ErrCustomerNotFound
			}
			return err
		}

		o, err := order.PlaceOrder(customer.ID, c)
		if err != nil {
			return err
		}
		if err := repos.Orders().Create(ctx, o); err != nil {
			return err
		}
		if err := repos.Carts().Delete(ctx, c.ID); err != nil {
			return err
		}
		placed = o
		return nil
	})
	if err != nil {
		s.failed(ctx, key, err)
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, placed.ID.String(),
		telemetry.SpanAttrCustomerID, placed.CustomerID.String(),
		telemetry.SpanAttrItemCount, placed.ItemCount(),
		telemetry.SpanAttrAmount, placed.TotalPrice().String(),
	)
	telemetry.SetOK(span)
	s.metrics.RecordOrderPlaced(ctx, placed.TotalPrice())

	s.logger.Info("order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("customer_id", placed.CustomerID.String()),
		zap.Int("items", placed.ItemCount()),
		zap.String("total", placed.TotalPrice().String()))

	resp := ToOrderResponse(placed)
	if err := shared.PublishDomainEvents(ctx, s.publisher, placed); err != nil {
		s.logger.Warn("failed to publish order placed event",
			zap.String("order_id", placed.ID.String()), zap.Error(err))
	}
	return &resp, nil
}

// failed records the failure and releases the idempotency key so the
// client can retry
func (s *CheckoutService) failed(ctx context.Context, key string, err error) {
	outcome := outcomeError
	switch {
	case errors.Is(err, order.ErrCartNotFound):
		outcome = outcomeCartNotFound
	case errors.Is(err, order.ErrCartEmpty):
		outcome = outcomeCartEmpty
	case errors.Is(err, identity.ErrCustomerNotFound):
		outcome = outcomeCustomerNotFound
	}
	s.metrics.RecordCheckoutFailure(ctx, outcome)

	if key == "" {
		return
	}
	if relErr := s.idempotency.Release(ctx, key); relErr != nil {
		s.logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(relErr))
	}
}
