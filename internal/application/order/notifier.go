package order

import (
	"context"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderPlacedNotifier reacts to placed orders. Email delivery is out of
// scope, so the notification is a structured log line.
type OrderPlacedNotifier struct {
	logger *zap.Logger
}

// NewOrderPlacedNotifier creates the notifier
func NewOrderPlacedNotifier(logger *zap.Logger) *OrderPlacedNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderPlacedNotifier{logger: logger.Named("notifier")}
}

// EventTypes returns the event types this handler is interested in
func (n *OrderPlacedNotifier) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced}
}

// Handle logs the order confirmation
func (n *OrderPlacedNotifier) Handle(_ context.Context, event shared.DomainEvent) error {
	placed, ok := event.(*order.OrderPlacedEvent)
	if !ok {
		return nil
	}
	n.logger.Info("order confirmation",
		zap.String("order_id", placed.OrderID.String()),
		zap.String("customer_id", placed.CustomerID.String()),
		zap.Int("item_count", placed.ItemCount),
		zap.String("total", placed.Total.StringFixed(2)))
	return nil
}

var _ shared.EventHandler = (*OrderPlacedNotifier)(nil)
