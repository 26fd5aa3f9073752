package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		category, err := NewCategory("  Beverages ")
		require.NoError(t, err)
		assert.Equal(t, "Beverages", category.Title)
		require.Len(t, category.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeCategoryCreated, category.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewCategory("")
		require.Error(t, err)
	})

	t.Run("rejects long title", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("a", MaxTitleLength+1))
		require.Error(t, err)
	})
}

func TestCategory_Rename(t *testing.T) {
	category, err := NewCategory("Beverages")
	require.NoError(t, err)

	require.NoError(t, category.Rename("Drinks"))
	assert.Equal(t, "Drinks", category.Title)
	assert.Equal(t, 2, category.Version)

	require.Error(t, category.Rename(""))
	assert.Equal(t, "Drinks", category.Title)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Espresso Beans":        "espresso-beans",
		"Crème Brûlée Mix":      "creme-brulee-mix",
		"  --Hello,  World!-- ": "hello-world",
		"100% Cotton T-Shirt":   "100-cotton-t-shirt",
		"":                      "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slugify(in))
		})
	}
}

func TestPromotionAndReview(t *testing.T) {
	t.Run("promotion validates discount", func(t *testing.T) {
		_, err := NewPromotion("Summer sale", decimalFrom(t, "-1"))
		require.Error(t, err)

		promo, err := NewPromotion("Summer sale", decimalFrom(t, "0.15"))
		require.NoError(t, err)
		assert.Equal(t, "Summer sale", promo.Description)
	})

	t.Run("review requires name and description", func(t *testing.T) {
		product, err := NewProduct("Tea", "", "", decimalFrom(t, "3"), 0, newID())
		require.NoError(t, err)

		_, err = NewReview(product.ID, "", "great")
		require.Error(t, err)
		_, err = NewReview(product.ID, "Ann", "")
		require.Error(t, err)

		review, err := NewReview(product.ID, "Ann", "Great tea")
		require.NoError(t, err)
		assert.Equal(t, product.ID, review.ProductID)
		assert.False(t, review.Date.IsZero())
	})
}
