package tagging

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
)

// ExistsFunc reports whether an entity with the given id exists
type ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

// TargetResolver checks that a tag target exists, by kind
type TargetResolver struct {
	resolvers map[tagging.EntityKind]ExistsFunc
}

// NewTargetResolver creates an empty resolver
func NewTargetResolver() *TargetResolver {
	return &TargetResolver{resolvers: make(map[tagging.EntityKind]ExistsFunc)}
}

// Register sets the existence check for a kind
func (r *TargetResolver) Register(kind tagging.EntityKind, fn ExistsFunc) *TargetResolver {
	r.resolvers[kind] = fn
	return r
}

// Exists resolves the target. Kinds without a registered check are rejected.
func (r *TargetResolver) Exists(ctx context.Context, kind tagging.EntityKind, id uuid.UUID) (bool, error) {
	fn, ok := r.resolvers[kind]
	if !ok {
		return false, shared.NewFieldError("INVALID_ENTITY_KIND", "kind", fmt.Sprintf("Entity kind %s cannot be tagged", kind))
	}
	return fn(ctx, id)
}

// Kinds returns the kinds with a registered check
func (r *TargetResolver) Kinds() []tagging.EntityKind {
	kinds := make([]tagging.EntityKind, 0, len(r.resolvers))
	for _, k := range tagging.AllEntityKinds {
		if _, ok := r.resolvers[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// FromFinder adapts a FindByID lookup to an ExistsFunc
func FromFinder[T any](find func(ctx context.Context, id uuid.UUID) (T, error)) ExistsFunc {
	return func(ctx context.Context, id uuid.UUID) (bool, error) {
		if _, err := find(ctx, id); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}
