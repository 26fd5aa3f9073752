package tagging

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
)

// deletionKinds maps deletion events to the kind of the deleted aggregate
var deletionKinds = map[string]tagging.EntityKind{
	catalog.EventTypeProductDeleted:   tagging.EntityKindProduct,
	catalog.EventTypeCategoryDeleted:  tagging.EntityKindCategory,
	catalog.EventTypePromotionDeleted: tagging.EntityKindPromotion,
	order.EventTypeOrderDeleted:       tagging.EntityKindOrder,
}

// PurgeOnDeleteHandler removes the tags of aggregates as they are deleted
type PurgeOnDeleteHandler struct {
	tags *TagService
}

// NewPurgeOnDeleteHandler creates the handler
func NewPurgeOnDeleteHandler(tags *TagService) *PurgeOnDeleteHandler {
	return &PurgeOnDeleteHandler{tags: tags}
}

// EventTypes returns the deletion events the handler listens for
func (h *PurgeOnDeleteHandler) EventTypes() []string {
	return []string{
		catalog.EventTypeProductDeleted,
		catalog.EventTypeCategoryDeleted,
		catalog.EventTypePromotionDeleted,
		order.EventTypeOrderDeleted,
	}
}

// Handle purges the deleted aggregate's tags
func (h *PurgeOnDeleteHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	kind, ok := deletionKinds[event.EventType()]
	if !ok {
		return nil
	}
	_, err := h.tags.PurgeEntity(ctx, kind, event.AggregateID())
	return err
}

var _ shared.EventHandler = (*PurgeOnDeleteHandler)(nil)
