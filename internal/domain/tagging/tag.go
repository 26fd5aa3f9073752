package tagging

import (
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// EntityKind names the kind of aggregate a tag is attached to.
// The set is closed: only kinds listed here can be tagged.
type EntityKind string

const (
	EntityKindProduct   EntityKind = "product"
	EntityKindCategory  EntityKind = "category"
	EntityKindPromotion EntityKind = "promotion"
	EntityKindCustomer  EntityKind = "customer"
	EntityKindOrder     EntityKind = "order"
)

// AllEntityKinds lists every taggable kind
var AllEntityKinds = []EntityKind{
	EntityKindProduct,
	EntityKindCategory,
	EntityKindPromotion,
	EntityKindCustomer,
	EntityKindOrder,
}

// ParseEntityKind parses a kind, case-insensitively
func ParseEntityKind(s string) (EntityKind, error) {
	kind := EntityKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", shared.NewFieldError("INVALID_ENTITY_KIND", "kind", "Unknown entity kind: "+s)
	}
	return kind, nil
}

// IsValid checks if the kind is one of the known kinds
func (k EntityKind) IsValid() bool {
	for _, known := range AllEntityKinds {
		if k == known {
			return true
		}
	}
	return false
}

// String returns the string representation of EntityKind
func (k EntityKind) String() string {
	return string(k)
}

// MaxLabelLength bounds tag labels
const MaxLabelLength = 255

// Tag is a free-form label
type Tag struct {
	shared.BaseEntity
	Label string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "tags"
}

// NewTag creates a new tag
func NewTag(label string) (*Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewFieldError("INVALID_LABEL", "label", "Label cannot be empty")
	}
	if len(label) > MaxLabelLength {
		return nil, shared.NewFieldError("INVALID_LABEL", "label", "Label cannot exceed 255 characters")
	}
	return &Tag{
		BaseEntity: shared.NewBaseEntity(),
		Label:      label,
	}, nil
}

// TaggedItem attaches a tag to one entity, addressed by (kind, object id).
// There is no foreign key to the target; the target may be deleted without
// the database noticing, so deletions are followed by an explicit purge.
type TaggedItem struct {
	shared.BaseEntity
	TagID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tagged_items_tag_target,priority:1"`
	EntityKind EntityKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_tagged_items_tag_target,priority:2;index:idx_tagged_items_target,priority:1"`
	ObjectID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tagged_items_tag_target,priority:3;index:idx_tagged_items_target,priority:2"`
	Tag        *Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TaggedItem) TableName() string {
	return "tagged_items"
}

// NewTaggedItem links a tag to a target
func NewTaggedItem(tagID uuid.UUID, kind EntityKind, objectID uuid.UUID) (*TaggedItem, error) {
	if tagID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TAG", "Tag ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewFieldError("INVALID_ENTITY_KIND", "kind", "Unknown entity kind: "+string(kind))
	}
	if objectID == uuid.Nil {
		return nil, shared.NewFieldError("INVALID_OBJECT_ID", "object_id", "Object ID cannot be empty")
	}
	return &TaggedItem{
		BaseEntity: shared.NewBaseEntity(),
		TagID:      tagID,
		EntityKind: kind,
		ObjectID:   objectID,
	}, nil
}

// ErrTargetNotFound is returned when tagging an entity that does not exist
var ErrTargetNotFound = shared.NewDomainError("TARGET_NOT_FOUND", "The entity to tag does not exist")
