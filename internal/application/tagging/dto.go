package tagging

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tagging"
)

// CreateTagRequest represents a request to create a tag
type CreateTagRequest struct {
	Label string `json:"label" binding:"required,max=255"`
}

// TagEntityRequest attaches a tag, by label, to a target
type TagEntityRequest struct {
	Label string `json:"label" binding:"required,max=255"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// TaggedItemResponse is returned after attaching a tag
type TaggedItemResponse struct {
	Tag        TagResponse `json:"tag"`
	EntityKind string      `json:"entity_kind"`
	ObjectID   uuid.UUID   `json:"object_id"`
}

// ToTagResponse converts a domain tag
func ToTagResponse(t *tagging.Tag) TagResponse {
	return TagResponse{ID: t.ID, Label: t.Label, CreatedAt: t.CreatedAt}
}

// ToTagResponses converts a slice of domain tags
func ToTagResponses(tags []tagging.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i := range tags {
		out[i] = ToTagResponse(&tags[i])
	}
	return out
}
