package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tagging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindByID finds a tag by ID
func (r *GormTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*tagging.Tag, error) {
	var tag tagging.Tag
	if err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// FindByLabel finds a tag by its label
func (r *GormTagRepository) FindByLabel(ctx context.Context, label string) (*tagging.Tag, error) {
	var tag tagging.Tag
	if err := r.db.WithContext(ctx).First(&tag, "label = ?", label).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// FindAll lists every tag ordered by label
func (r *GormTagRepository) FindAll(ctx context.Context) ([]tagging.Tag, error) {
	var tags []tagging.Tag
	if err := r.db.WithContext(ctx).Order("label").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Save creates or updates a tag
func (r *GormTagRepository) Save(ctx context.Context, tag *tagging.Tag) error {
	return translate(r.db.WithContext(ctx).Save(tag).Error)
}

// GormTaggedItemRepository implements TaggedItemRepository using GORM
type GormTaggedItemRepository struct {
	db *gorm.DB
}

// NewGormTaggedItemRepository creates a new GormTaggedItemRepository
func NewGormTaggedItemRepository(db *gorm.DB) *GormTaggedItemRepository {
	return &GormTaggedItemRepository{db: db}
}

// FindTagsFor returns the tags attached to one target with a single join
func (r *GormTaggedItemRepository) FindTagsFor(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) ([]tagging.Tag, error) {
	var tags []tagging.Tag
	err := r.db.WithContext(ctx).
		Model(&tagging.Tag{}).
		Joins("JOIN tagged_items ON tagged_items.tag_id = tags.id").
		Where("tagged_items.entity_kind = ? AND tagged_items.object_id = ?", kind, objectID).
		Order("tags.label").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Exists reports whether the tag is already attached to the target
func (r *GormTaggedItemRepository) Exists(ctx context.Context, tagID uuid.UUID, kind tagging.EntityKind, objectID uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &tagging.TaggedItem{},
		"tag_id = ? AND entity_kind = ? AND object_id = ?", tagID, kind, objectID)
}

// Save attaches a tag. Attaching an already attached tag is a no-op.
func (r *GormTaggedItemRepository) Save(ctx context.Context, item *tagging.TaggedItem) error {
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag_id"}, {Name: "entity_kind"}, {Name: "object_id"}},
			DoNothing: true,
		}).
		Create(item).Error)
}

// Delete detaches one tag from a target
func (r *GormTaggedItemRepository) Delete(ctx context.Context, tagID uuid.UUID, kind tagging.EntityKind, objectID uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).Delete(&tagging.TaggedItem{},
		"tag_id = ? AND entity_kind = ? AND object_id = ?", tagID, kind, objectID))
}

// DeleteForTarget detaches every tag from a target
func (r *GormTaggedItemRepository) DeleteForTarget(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&tagging.TaggedItem{}, "entity_kind = ? AND object_id = ?", kind, objectID)
	return result.RowsAffected, result.Error
}
