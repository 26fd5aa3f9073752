package event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEventSerializer_RoundTrip(t *testing.T) {
	s := NewEventSerializer()
	product, err := catalog.NewProduct("Tea", "", "", decimal.RequireFromString("2.00"), 1, uuid.New())
	require.NoError(t, err)
	original := catalog.NewProductPriceChangedEvent(product, decimal.RequireFromString("1.50"))

	data, err := s.Serialize(original)
	require.NoError(t, err)

	decoded, err := s.Deserialize(catalog.EventTypeProductPriceChanged, data)
	require.NoError(t, err)

	changed, ok := decoded.(*catalog.ProductPriceChangedEvent)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), changed.EventID())
	assert.Equal(t, product.ID, changed.AggregateID())
}

func TestEventSerializer_UnknownType(t *testing.T) {
	s := NewEventSerializer()
	_, err := s.Deserialize("Nope", []byte(`{}`))
	require.Error(t, err)
	assert.False(t, s.IsRegistered("Nope"))
	assert.Contains(t, s.RegisteredTypes(), order.EventTypeOrderPlaced)
}

func TestAuditLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewAuditLogHandler(nil, zap.New(core))
	assert.Nil(t, h.EventTypes())

	id := uuid.New()
	require.NoError(t, h.Handle(context.Background(), order.NewOrderDeletedEvent(id)))
	require.NoError(t, h.Handle(context.Background(), newTestEvent("Custom")))

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 2)
	assert.Equal(t, order.EventTypeOrderDeleted, entries[0].ContextMap()["event_type"])
	assert.Equal(t, id.String(), entries[0].ContextMap()["aggregate_id"])
	assert.Equal(t, true, entries[1].ContextMap()["unregistered"])
}
