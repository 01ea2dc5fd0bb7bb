package catalog

import (
	"sort"
	"strings"

	"fashion-store/models"
)

// SortKey selects the ordering of a filtered result.
type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortFeatured  SortKey = "featured"
	SortRelevance SortKey = "relevance"
)

// Filter narrows the product set. Zero values and empty sets mean "no
// constraint"; an unmatched category or subcategory yields an empty
// result rather than an error.
type Filter struct {
	CategoryID    string
	SubcategoryID string
	Query         string
	Brands        []string
	Colors        []string
	MinRating     float64
	MinPrice      *float64
	MaxPrice      *float64
}

// Apply returns the subset of products matching f, ordered by key. The
// input is never mutated and ties keep their pre-sort relative order.
func Apply(products []models.Product, f Filter, key SortKey) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	sortProducts(out, key)
	return out
}

func matches(p models.Product, f Filter) bool {
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SubcategoryID != "" && p.SubcategoryID != f.SubcategoryID {
		return false
	}
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Colors) > 0 && !hasAnyColor(p.Colors, f.Colors) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring search over name,
// description, brand and tags.
func matchesQuery(p models.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyColor(colors, wanted []string) bool {
	for _, c := range colors {
		if contains(wanted, c) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		// Descending id comparison stands in for recency; ids embed the
		// template and variant index.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortFeatured, SortRelevance:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
