package tagging

import (
	"context"

	"github.com/google/uuid"
)

// TagRepository defines the interface for tag persistence
type TagRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	FindByLabel(ctx context.Context, label string) (*Tag, error)
	FindAll(ctx context.Context) ([]Tag, error)
	Save(ctx context.Context, tag *Tag) error
}

// TaggedItemRepository defines the interface for tag attachments
type TaggedItemRepository interface {
	// FindTagsFor returns the tags attached to one target in a single query
	FindTagsFor(ctx context.Context, kind EntityKind, objectID uuid.UUID) ([]Tag, error)

	// Exists reports whether the tag is already attached to the target
	Exists(ctx context.Context, tagID uuid.UUID, kind EntityKind, objectID uuid.UUID) (bool, error)

	// Save attaches a tag
	Save(ctx context.Context, item *TaggedItem) error

	// Delete detaches one tag from a target
	Delete(ctx context.Context, tagID uuid.UUID, kind EntityKind, objectID uuid.UUID) error

	// DeleteForTarget detaches every tag from a target and returns the count
	DeleteForTarget(ctx context.Context, kind EntityKind, objectID uuid.UUID) (int64, error)
}
