package service

import (
	"errors"
	"fmt"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/model"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/store"
)

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("not found")

// fallbackCategory groups products whose category field is absent, empty or
// not a string. A whitespace-only category is a real (if odd) name and keeps
// its own entry.
const fallbackCategory = "Uncategorized"

// CatalogService answers read queries against the product collection. The
// catalog is loaded once at startup and never written by the API.
type CatalogService struct {
	products *store.Collection
}

func NewCatalogService(products *store.Collection) *CatalogService {
	return &CatalogService{products: products}
}

// Products returns the catalog exactly as loaded from disk, in file order.
func (s *CatalogService) Products() []store.Record {
	return s.products.All()
}

// ProductByID scans the catalog for a product whose id, rendered as a
// string, equals id. Ids are stored as strings or numbers; both compare by
// their textual form. The first match wins.
func (s *CatalogService) ProductByID(id string) (store.Record, error) {
	for _, p := range s.products.All() {
		if fmt.Sprintf("%v", p["id"]) == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Categories derives the distinct category list from the current catalog:
// one entry per distinct name, in first-seen order. Names that slugify to
// the same value stay separate entries.
func (s *CatalogService) Categories() []model.Category {
	seen := make(map[string]bool)
	categories := []model.Category{}
	for _, p := range s.products.All() {
		name := fallbackCategory
		if v, ok := p["category"].(string); ok && v != "" {
			name = v
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, model.Category{
			ID:   Slugify(name),
			Name: name,
		})
	}
	return categories
}
