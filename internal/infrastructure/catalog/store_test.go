package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplens/backend/internal/domain"
)

func storeFixture() *Store {
	return NewStore([]domain.Product{
		{ID: "tv-1", Name: "U8K ULED TV", Category: domain.CategoryTV, Brand: "Hisense",
			Specs:    map[string]interface{}{"refresh_rate": "144Hz"},
			Features: []string{"Game Mode Pro"}},
		{ID: "tv-2", Name: "A6 Series TV", Category: domain.CategoryTV, Brand: "Toshiba"},
		{ID: "fridge-1", Name: "520L Refrigerator", Category: domain.CategoryRefrigerator, Brand: "Hisense",
			Features: []string{"Total no frost"}},
		{ID: "ac-1", Name: "Split AC", Category: domain.CategoryAC, Brand: "Hisense"},
	})
}

func TestStoreAll(t *testing.T) {
	s := storeFixture()

	products := s.All()
	require.Len(t, products, 4)
	assert.Equal(t, "tv-1", products[0].ID, "catalog order is preserved")
	assert.Equal(t, "ac-1", products[3].ID)
}

func TestStoreGetByID(t *testing.T) {
	s := storeFixture()

	p, ok := s.GetByID("fridge-1")
	require.True(t, ok)
	assert.Equal(t, "520L Refrigerator", p.Name)

	_, ok = s.GetByID("nope")
	assert.False(t, ok)
}

func TestStoreFilter(t *testing.T) {
	s := storeFixture()

	t.Run("by category", func(t *testing.T) {
		tvs := s.Filter("tv", nil)
		require.Len(t, tvs, 2)
		assert.Equal(t, "tv-1", tvs[0].ID)
		assert.Equal(t, "tv-2", tvs[1].ID)
	})

	t.Run("category is case insensitive", func(t *testing.T) {
		assert.Len(t, s.Filter("TV", nil), 2)
	})

	t.Run("unrecognized category means no filter", func(t *testing.T) {
		assert.Len(t, s.Filter("spaceship", nil), 4)
		assert.Len(t, s.Filter("", nil), 4)
	})

	t.Run("by brand", func(t *testing.T) {
		hisense := s.Filter("", []string{"hisense"})
		require.Len(t, hisense, 3)
		for _, p := range hisense {
			assert.Equal(t, "Hisense", p.Brand)
		}
	})

	t.Run("category and brand combined", func(t *testing.T) {
		result := s.Filter("tv", []string{"Toshiba"})
		require.Len(t, result, 1)
		assert.Equal(t, "tv-2", result[0].ID)
	})
}

func TestStoreSearch(t *testing.T) {
	s := storeFixture()

	t.Run("matches name", func(t *testing.T) {
		results := s.Search("uled")
		require.Len(t, results, 1)
		assert.Equal(t, "tv-1", results[0].ID)
	})

	t.Run("matches specs", func(t *testing.T) {
		results := s.Search("144hz")
		require.Len(t, results, 1)
		assert.Equal(t, "tv-1", results[0].ID)
	})

	t.Run("matches features", func(t *testing.T) {
		results := s.Search("no frost")
		require.Len(t, results, 1)
		assert.Equal(t, "fridge-1", results[0].ID)
	})

	t.Run("product appears at most once", func(t *testing.T) {
		// "game mode" is in tv-1's features; "u8k" is in its name. A term
		// present in several fields of the same product must not duplicate it.
		results := s.Search("game mode")
		assert.Len(t, results, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, s.Search("blender"))
	})
}

func TestStoreCategories(t *testing.T) {
	s := storeFixture()

	assert.Equal(t, []string{"ac", "refrigerator", "tv"}, s.Categories())
}

func TestStoreBrands(t *testing.T) {
	s := storeFixture()

	assert.Equal(t, []string{"Hisense", "Toshiba"}, s.Brands(""))
	assert.Equal(t, []string{"Hisense"}, s.Brands("refrigerator"))
}
