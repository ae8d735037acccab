package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/store"
)

func fixtureCollection(t *testing.T, content string) *store.Collection {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return store.Open(path)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Pain Relief":            "pain-relief",
		"Vitamins & Supplements": "vitamins-supplements",
		"  First Aid  ":          "first-aid",
		"مسكنات الألم":           "مسكنات-الألم",
		"UPPER_case--123":        "upper-case-123",
		"  ":                     "",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "Slugify(%q)", name)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	for _, name := range []string{"Pain Relief", "First  Aid", "Vitamins & Supplements"} {
		slug := Slugify(name)
		assert.Equal(t, slug, Slugify(slug))
	}
}

func TestProductsReturnsCatalogVerbatim(t *testing.T) {
	c := fixtureCollection(t, `[{"id":1,"name":"A","extra":{"k":"v"}},{"id":2,"name":"B"}]`)
	svc := NewCatalogService(c)

	products := svc.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0]["name"])
	assert.Equal(t, map[string]any{"k": "v"}, products[0]["extra"])
	assert.Equal(t, "B", products[1]["name"])
}

func TestProductByID(t *testing.T) {
	c := fixtureCollection(t, `[{"id":1,"name":"A"},{"id":"sku-2","name":"B"},{"id":1,"name":"duplicate"}]`)
	svc := NewCatalogService(c)

	p, err := svc.ProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, "A", p["name"], "first match wins on duplicate ids")

	p, err = svc.ProductByID("sku-2")
	require.NoError(t, err)
	assert.Equal(t, "B", p["name"])

	_, err = svc.ProductByID("999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesDedupesInFirstSeenOrder(t *testing.T) {
	c := fixtureCollection(t, `[
		{"id":1,"category":"Pain Relief"},
		{"id":2,"category":"Vitamins"},
		{"id":3,"category":"Pain Relief"},
		{"id":4}
	]`)
	svc := NewCatalogService(c)

	categories := svc.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, "Pain Relief", categories[0].Name)
	assert.Equal(t, "pain-relief", categories[0].ID)
	assert.Equal(t, "Vitamins", categories[1].Name)
	assert.Equal(t, "Uncategorized", categories[2].Name)
	assert.Equal(t, "uncategorized", categories[2].ID)
	assert.Empty(t, categories[0].Description)
	assert.Nil(t, categories[0].Image)
}

func TestCategoriesEmptyCategoryFallsBack(t *testing.T) {
	c := fixtureCollection(t, `[{"id":1,"category":""},{"id":2}]`)
	svc := NewCatalogService(c)

	categories := svc.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, "Uncategorized", categories[0].Name)
}

func TestCategoriesWhitespaceNameIsNotFalsy(t *testing.T) {
	// A whitespace-only category is still a name; only absent/empty values
	// fall back to Uncategorized.
	c := fixtureCollection(t, `[{"id":1,"category":"  "},{"id":2,"category":""}]`)
	svc := NewCatalogService(c)

	categories := svc.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "  ", categories[0].Name)
	assert.Equal(t, "", categories[0].ID)
	assert.Equal(t, "Uncategorized", categories[1].Name)
}

func TestCategoriesSlugCollisionsStayDistinct(t *testing.T) {
	c := fixtureCollection(t, `[{"id":1,"category":"First Aid"},{"id":2,"category":"First  Aid"}]`)
	svc := NewCatalogService(c)

	categories := svc.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, categories[0].ID, categories[1].ID)
	assert.NotEqual(t, categories[0].Name, categories[1].Name)
}

func TestCategoriesDeterministic(t *testing.T) {
	c := fixtureCollection(t, `[{"id":1,"category":"A"},{"id":2,"category":"B"},{"id":3,"category":"A"}]`)
	svc := NewCatalogService(c)

	first := svc.Categories()
	second := svc.Categories()
	assert.Equal(t, first, second)
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	c := fixtureCollection(t, `[]`)
	svc := NewCatalogService(c)

	assert.Empty(t, svc.Categories())
	assert.Empty(t, svc.Products())
}
