package tagging

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*tagging.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tagging.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByLabel(ctx context.Context, label string) (*tagging.Tag, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tagging.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]tagging.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]tagging.Tag), args.Error(1)
}

func (m *MockTagRepository) Save(ctx context.Context, tag *tagging.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

type MockTaggedItemRepository struct {
	mock.Mock
}

func (m *MockTaggedItemRepository) FindTagsFor(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) ([]tagging.Tag, error) {
	args := m.Called(ctx, kind, objectID)
	return args.Get(0).([]tagging.Tag), args.Error(1)
}

func (m *MockTaggedItemRepository) Exists(ctx context.Context, tagID uuid.UUID, kind tagging.EntityKind, objectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tagID, kind, objectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaggedItemRepository) Save(ctx context.Context, item *tagging.TaggedItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockTaggedItemRepository) Delete(ctx context.Context, tagID uuid.UUID, kind tagging.EntityKind, objectID uuid.UUID) error {
	return m.Called(ctx, tagID, kind, objectID).Error(0)
}

func (m *MockTaggedItemRepository) DeleteForTarget(ctx context.Context, kind tagging.EntityKind, objectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, kind, objectID)
	return args.Get(0).(int64), args.Error(1)
}
