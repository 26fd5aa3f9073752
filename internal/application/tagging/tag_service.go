package tagging

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"go.uber.org/zap"
)

var errTagNotAttached = shared.NewDomainError("NOT_FOUND", "Tag is not attached to this entity")

// TagService manages tags and their attachments
type TagService struct {
	tagRepo  tagging.TagRepository
	itemRepo tagging.TaggedItemRepository
	targets  *TargetResolver
	logger   *zap.Logger
}

// NewTagService creates a new TagService
func NewTagService(
	tagRepo tagging.TagRepository,
	itemRepo tagging.TaggedItemRepository,
	targets *TargetResolver,
	logger *zap.Logger,
) *TagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if targets == nil {
		targets = NewTargetResolver()
	}
	return &TagService{
		tagRepo:  tagRepo,
		itemRepo: itemRepo,
		targets:  targets,
		logger:   logger,
	}
}

// CreateTag returns the tag with the given label, creating it when missing.
// The bool reports whether a new tag was created.
func (s *TagService) CreateTag(ctx context.Context, req CreateTagRequest) (*TagResponse, bool, error) {
	tag, created, err := s.findOrCreate(ctx, req.Label)
	if err != nil {
		return nil, false, err
	}
	resp := ToTagResponse(tag)
	return &resp, created, nil
}

func (s *TagService) findOrCreate(ctx context.Context, label string) (*tagging.Tag, bool, error) {
	tag, err := tagging.NewTag(label)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.tagRepo.FindByLabel(ctx, tag.Label)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	if err := s.tagRepo.Save(ctx, tag); err != nil {
		// lost a race with a concurrent create of the same label
		if errors.Is(err, shared.ErrAlreadyExists) {
			existing, findErr := s.tagRepo.FindByLabel(ctx, tag.Label)
			return existing, false, findErr
		}
		return nil, false, err
	}
	return tag, true, nil
}

// ListTags returns every tag ordered by label
func (s *TagService) ListTags(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTagResponses(tags), nil
}

// TagEntity attaches the labelled tag to a target. Attaching a tag that is
// already attached is a no-op.
func (s *TagService) TagEntity(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID, req TagEntityRequest) (*TaggedItemResponse, error) {
	if err := s.resolve(ctx, kind, objectID); err != nil {
		return nil, err
	}

	tag, _, err := s.findOrCreate(ctx, req.Label)
	if err != nil {
		return nil, err
	}

	attached, err := s.itemRepo.Exists(ctx, tag.ID, kind, objectID)
	if err != nil {
		return nil, err
	}
	if !attached {
		item, err := tagging.NewTaggedItem(tag.ID, kind, objectID)
		if err != nil {
			return nil, err
		}
		if err := s.itemRepo.Save(ctx, item); err != nil {
			return nil, err
		}
		s.logger.Debug("entity tagged",
			zap.String("kind", kind.String()),
			zap.String("object_id", objectID.String()),
			zap.String("label", tag.Label))
	}

	return &TaggedItemResponse{
		Tag:        ToTagResponse(tag),
		EntityKind: kind.String(),
		ObjectID:   objectID,
	}, nil
}

// UntagEntity detaches one tag from a target
func (s *TagService) UntagEntity(ctx context.Context, kind tagging.EntityKind, objectID, tagID uuid.UUID) error {
	if !kind.IsValid() {
		return shared.NewFieldError("INVALID_ENTITY_KIND", "kind", "Unknown entity kind: "+kind.String())
	}
	if err := s.itemRepo.Delete(ctx, tagID, kind, objectID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return errTagNotAttached
		}
		return err
	}
	return nil
}

// TagsFor lists the tags attached to a target
func (s *TagService) TagsFor(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) ([]TagResponse, error) {
	if !kind.IsValid() {
		return nil, shared.NewFieldError("INVALID_ENTITY_KIND", "kind", "Unknown entity kind: "+kind.String())
	}
	tags, err := s.itemRepo.FindTagsFor(ctx, kind, objectID)
	if err != nil {
		return nil, err
	}
	return ToTagResponses(tags), nil
}

// PurgeEntity removes every tag attachment of a target
func (s *TagService) PurgeEntity(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) (int64, error) {
	n, err := s.itemRepo.DeleteForTarget(ctx, kind, objectID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("purged tags of deleted entity",
			zap.String("kind", kind.String()),
			zap.String("object_id", objectID.String()),
			zap.Int64("count", n))
	}
	return n, nil
}

func (s *TagService) resolve(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) error {
	if !kind.IsValid() {
		return shared.NewFieldError("INVALID_ENTITY_KIND", "kind", "Unknown entity kind: "+kind.String())
	}
	ok, err := s.targets.Exists(ctx, kind, objectID)
	if err != nil {
		return err
	}
	if !ok {
		return tagging.ErrTargetNotFound
	}
	return nil
}
