package tagging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityKind(t *testing.T) {
	for _, kind := range AllEntityKinds {
		parsed, err := ParseEntityKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := ParseEntityKind(" Product ")
	require.NoError(t, err)
	assert.Equal(t, EntityKindProduct, parsed)

	_, err = ParseEntityKind("warehouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown entity kind")
}

func TestNewTag(t *testing.T) {
	tag, err := NewTag("  sale ")
	require.NoError(t, err)
	assert.Equal(t, "sale", tag.Label)

	_, err = NewTag("")
	require.Error(t, err)
}

func TestNewTaggedItem(t *testing.T) {
	tagID := uuid.New()
	objectID := uuid.New()

	item, err := NewTaggedItem(tagID, EntityKindProduct, objectID)
	require.NoError(t, err)
	assert.Equal(t, tagID, item.TagID)
	assert.Equal(t, EntityKindProduct, item.EntityKind)
	assert.Equal(t, objectID, item.ObjectID)

	_, err = NewTaggedItem(uuid.Nil, EntityKindProduct, objectID)
	require.Error(t, err)
	_, err = NewTaggedItem(tagID, EntityKind("user"), objectID)
	require.Error(t, err)
	_, err = NewTaggedItem(tagID, EntityKindOrder, uuid.Nil)
	require.Error(t, err)
}
