package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the UUID primary key and the two timestamps every
// storefront table has
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity returns an entity with a fresh v4 id, created and updated now
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch marks the entity as modified
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
