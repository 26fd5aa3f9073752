package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTag(t *testing.T, db *gorm.DB, label string) *tagging.Tag {
	t.Helper()
	tag, err := tagging.NewTag(label)
	require.NoError(t, err)
	require.NoError(t, NewGormTagRepository(db).Save(context.Background(), tag))
	return tag
}

func attach(t *testing.T, repo *GormTaggedItemRepository, tag *tagging.Tag, kind tagging.EntityKind, id uuid.UUID) {
	t.Helper()
	item, err := tagging.NewTaggedItem(tag.ID, kind, id)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), item))
}

func TestGormTagRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTagRepository(db)

	sale := seedTag(t, db, "sale")
	seedTag(t, db, "new")

	found, err := repo.FindByLabel(ctx, "sale")
	require.NoError(t, err)
	assert.Equal(t, sale.ID, found.ID)

	_, err = repo.FindByLabel(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Label)

	dup, err := tagging.NewTag("sale")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)
}

func TestGormTaggedItemRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTaggedItemRepository(db)
	cat := seedCategory(t, db, "Toys")
	product := seedProduct(t, db, cat.ID, "Product 7", "12")
	other := seedProduct(t, db, cat.ID, "Product 8", "12")
	sale := seedTag(t, db, "sale")
	gift := seedTag(t, db, "gift")

	t.Run("tags one product with sale", func(t *testing.T) {
		attach(t, repo, sale, tagging.EntityKindProduct, product.ID)

		tags, err := repo.FindTagsFor(ctx, tagging.EntityKindProduct, product.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "sale", tags[0].Label)
	})

	t.Run("attaching twice keeps one row", func(t *testing.T) {
		attach(t, repo, sale, tagging.EntityKindProduct, product.ID)

		var n int64
		require.NoError(t, db.Model(&tagging.TaggedItem{}).Where("object_id = ?", product.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("targets are keyed by kind and id", func(t *testing.T) {
		attach(t, repo, gift, tagging.EntityKindCategory, product.ID)

		tags, err := repo.FindTagsFor(ctx, tagging.EntityKindProduct, product.ID)
		require.NoError(t, err)
		assert.Len(t, tags, 1)

		tags, err = repo.FindTagsFor(ctx, tagging.EntityKindProduct, other.ID)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("detach", func(t *testing.T) {
		attach(t, repo, gift, tagging.EntityKindProduct, other.ID)
		ok, err := repo.Exists(ctx, gift.ID, tagging.EntityKindProduct, other.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, repo.Delete(ctx, gift.ID, tagging.EntityKindProduct, other.ID))
		assert.ErrorIs(t, repo.Delete(ctx, gift.ID, tagging.EntityKindProduct, other.ID), shared.ErrNotFound)
	})

	t.Run("purges every tag of a target", func(t *testing.T) {
		attach(t, repo, gift, tagging.EntityKindProduct, product.ID)

		removed, err := repo.DeleteForTarget(ctx, tagging.EntityKindProduct, product.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, removed)

		tags, err := repo.FindTagsFor(ctx, tagging.EntityKindProduct, product.ID)
		require.NoError(t, err)
		assert.Empty(t, tags)

		tags, err = repo.FindTagsFor(ctx, tagging.EntityKindCategory, product.ID)
		require.NoError(t, err)
		assert.Len(t, tags, 1, "other kinds are untouched")
	})
}
