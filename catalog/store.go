// Package catalog materializes the product catalog from static category
// and template tables and answers filtered, sorted views over it. The
// catalog is built once at startup and immutable afterwards.
package catalog

import (
	"fmt"

	"fashion-store/models"
)

// DefaultVariantsPerTemplate matches the size of the original template
// expansion.
const DefaultVariantsPerTemplate = 9

// Store holds the generated product set and the category taxonomy.
type Store struct {
	products   []models.Product
	byID       map[string]*models.Product
	categories []models.Category
}

// NewStore generates the catalog. variantsPerTemplate <= 0 falls back to
// the default.
func NewStore(variantsPerTemplate int) (*Store, error) {
	if variantsPerTemplate <= 0 {
		variantsPerTemplate = DefaultVariantsPerTemplate
	}

	products := generate(variantsPerTemplate)

	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		p := &products[i]
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &Store{
		products:   products,
		byID:       byID,
		categories: Taxonomy(),
	}, nil
}

// validateProduct rejects entries that would render a negative discount
// badge or otherwise break display invariants.
func validateProduct(p *models.Product) error {
	if p.Price < 0 {
		return fmt.Errorf("catalog: product %q has negative price", p.ID)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("catalog: product %q original price %.2f below price %.2f", p.ID, *p.OriginalPrice, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("catalog: product %q rating %.1f out of range", p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("catalog: product %q negative review count", p.ID)
	}
	return nil
}

// All returns the full product set. Callers must not mutate the result.
func (s *Store) All() []models.Product {
	return s.products
}

// ByID returns the product with the given id, or nil.
func (s *Store) ByID(id string) *models.Product {
	return s.byID[id]
}

// ByCategory returns every product in the category, in catalog order.
// An unknown category id yields an empty slice.
func (s *Store) ByCategory(categoryID string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// BySubcategory returns every product in the subcategory, in catalog order.
func (s *Store) BySubcategory(subcategoryID string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.SubcategoryID == subcategoryID {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the taxonomy tree.
func (s *Store) Categories() []models.Category {
	return s.categories
}

// Related returns up to limit products sharing the subcategory of the
// given product, excluding the product itself.
func (s *Store) Related(productID string, limit int) []models.Product {
	p := s.byID[productID]
	if p == nil || limit <= 0 {
		return []models.Product{}
	}
	out := []models.Product{}
	for _, other := range s.products {
		if other.ID == productID || other.SubcategoryID != p.SubcategoryID {
			continue
		}
		out = append(out, other)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Brands returns the distinct brands of the given products, in first-seen
// order. Used to build filter facets.
func Brands(products []models.Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}

// Colors returns the distinct colors across the given products.
func Colors(products []models.Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		for _, c := range p.Colors {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
