package tagging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tagFixture struct {
	tags     *MockTagRepository
	items    *MockTaggedItemRepository
	products map[uuid.UUID]bool
	service  *TagService
}

func newTagFixture() *tagFixture {
	f := &tagFixture{
		tags:     new(MockTagRepository),
		items:    new(MockTaggedItemRepository),
		products: make(map[uuid.UUID]bool),
	}
	resolver := NewTargetResolver().Register(tagging.EntityKindProduct, func(_ context.Context, id uuid.UUID) (bool, error) {
		return f.products[id], nil
	})
	f.service = NewTagService(f.tags, f.items, resolver, nil)
	return f
}

func TestTagService_CreateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing label", func(t *testing.T) {
		f := newTagFixture()
		f.tags.On("FindByLabel", ctx, "sale").Return(nil, shared.ErrNotFound)
		f.tags.On("Save", ctx, mock.AnythingOfType("*tagging.Tag")).Return(nil)

		resp, created, err := f.service.CreateTag(ctx, CreateTagRequest{Label: " sale "})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "sale", resp.Label)
	})

	t.Run("returns the existing tag", func(t *testing.T) {
		f := newTagFixture()
		existing, _ := tagging.NewTag("sale")
		f.tags.On("FindByLabel", ctx, "sale").Return(existing, nil)

		resp, created, err := f.service.CreateTag(ctx, CreateTagRequest{Label: "sale"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, resp.ID)
		f.tags.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("recovers from a concurrent create", func(t *testing.T) {
		f := newTagFixture()
		winner, _ := tagging.NewTag("sale")
		f.tags.On("FindByLabel", ctx, "sale").Return(nil, shared.ErrNotFound).Once()
		f.tags.On("Save", ctx, mock.Anything).Return(shared.ErrAlreadyExists)
		f.tags.On("FindByLabel", ctx, "sale").Return(winner, nil).Once()

		resp, created, err := f.service.CreateTag(ctx, CreateTagRequest{Label: "sale"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner.ID, resp.ID)
	})

	t.Run("rejects an empty label", func(t *testing.T) {
		f := newTagFixture()
		_, _, err := f.service.CreateTag(ctx, CreateTagRequest{Label: "  "})
		require.Error(t, err)
	})
}

func TestTagService_TagEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("tags an existing product", func(t *testing.T) {
		f := newTagFixture()
		productID := uuid.New()
		f.products[productID] = true
		tag, _ := tagging.NewTag("sale")
		f.tags.On("FindByLabel", ctx, "sale").Return(tag, nil)
		f.items.On("Exists", ctx, tag.ID, tagging.EntityKindProduct, productID).Return(false, nil)
		f.items.On("Save", ctx, mock.MatchedBy(func(item *tagging.TaggedItem) bool {
			return item.TagID == tag.ID && item.ObjectID == productID
		})).Return(nil)

		resp, err := f.service.TagEntity(ctx, tagging.EntityKindProduct, productID, TagEntityRequest{Label: "sale"})
		require.NoError(t, err)
		assert.Equal(t, "product", resp.EntityKind)
		assert.Equal(t, "sale", resp.Tag.Label)
		f.items.AssertExpectations(t)
	})

	t.Run("attaching twice is a no-op", func(t *testing.T) {
		f := newTagFixture()
		productID := uuid.New()
		f.products[productID] = true
		tag, _ := tagging.NewTag("sale")
		f.tags.On("FindByLabel", ctx, "sale").Return(tag, nil)
		f.items.On("Exists", ctx, tag.ID, tagging.EntityKindProduct, productID).Return(true, nil)

		_, err := f.service.TagEntity(ctx, tagging.EntityKindProduct, productID, TagEntityRequest{Label: "sale"})
		require.NoError(t, err)
		f.items.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing target", func(t *testing.T) {
		f := newTagFixture()
		_, err := f.service.TagEntity(ctx, tagging.EntityKindProduct, uuid.New(), TagEntityRequest{Label: "sale"})
		assert.ErrorIs(t, err, tagging.ErrTargetNotFound)
		f.tags.AssertNotCalled(t, "FindByLabel", mock.Anything, mock.Anything)
	})

	t.Run("kind without a resolver", func(t *testing.T) {
		f := newTagFixture()
		_, err := f.service.TagEntity(ctx, tagging.EntityKindOrder, uuid.New(), TagEntityRequest{Label: "sale"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ENTITY_KIND", domainErr.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		f := newTagFixture()
		_, err := f.service.TagEntity(ctx, tagging.EntityKind("user"), uuid.New(), TagEntityRequest{Label: "sale"})
		require.Error(t, err)
	})
}

func TestTagService_UntagAndList(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	productID := uuid.New()
	tag, _ := tagging.NewTag("sale")

	f.items.On("FindTagsFor", ctx, tagging.EntityKindProduct, productID).Return([]tagging.Tag{*tag}, nil)
	f.items.On("Delete", ctx, tag.ID, tagging.EntityKindProduct, productID).Return(nil).Once()
	f.items.On("Delete", ctx, tag.ID, tagging.EntityKindProduct, productID).Return(shared.ErrNotFound).Once()
	f.tags.On("FindAll", ctx).Return([]tagging.Tag{*tag}, nil)

	tags, err := f.service.TagsFor(ctx, tagging.EntityKindProduct, productID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "sale", tags[0].Label)

	all, err := f.service.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.service.UntagEntity(ctx, tagging.EntityKindProduct, productID, tag.ID))
	err = f.service.UntagEntity(ctx, tagging.EntityKindProduct, productID, tag.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurgeOnDeleteHandler(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	h := NewPurgeOnDeleteHandler(f.service)

	productID, orderID := uuid.New(), uuid.New()
	f.items.On("DeleteForTarget", ctx, tagging.EntityKindProduct, productID).Return(int64(2), nil)
	f.items.On("DeleteForTarget", ctx, tagging.EntityKindOrder, orderID).Return(int64(0), errors.New("db down"))

	assert.Len(t, h.EventTypes(), 4)
	require.NoError(t, h.Handle(ctx, catalog.NewProductDeletedEvent(productID)))
	require.Error(t, h.Handle(ctx, order.NewOrderDeletedEvent(orderID)))
	f.items.AssertExpectations(t)
}

func TestFromFinder(t *testing.T) {
	ctx := context.Background()
	known := uuid.New()
	exists := FromFinder(func(_ context.Context, id uuid.UUID) (*catalog.Promotion, error) {
		if id == known {
			return &catalog.Promotion{}, nil
		}
		return nil, shared.ErrNotFound
	})

	ok, err := exists(ctx, known)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
