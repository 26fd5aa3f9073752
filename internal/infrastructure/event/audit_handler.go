package event

import (
	"context"
	"encoding/json"

	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuditLogHandler writes every published event to the log as JSON
type AuditLogHandler struct {
	serializer *EventSerializer
	logger     *zap.Logger
}

// NewAuditLogHandler creates a wildcard handler that logs events
func NewAuditLogHandler(serializer *EventSerializer, logger *zap.Logger) *AuditLogHandler {
	if serializer == nil {
		serializer = NewEventSerializer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogHandler{serializer: serializer, logger: logger.Named("events")}
}

// EventTypes subscribes to all events
func (h *AuditLogHandler) EventTypes() []string {
	return nil
}

// Handle logs the event. Serialization failures are logged, not returned.
func (h *AuditLogHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
	}

	payload, err := h.serializer.Serialize(event)
	if err != nil {
		h.logger.Warn("failed to serialize event", append(fields, zap.Error(err))...)
		return nil
	}
	if !h.serializer.IsRegistered(event.EventType()) {
		fields = append(fields, zap.Bool("unregistered", true))
	}

	h.logger.Info("domain event", append(fields, zap.Any("payload", json.RawMessage(payload)))...)
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
