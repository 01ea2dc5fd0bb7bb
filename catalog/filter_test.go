package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-store/models"
)

func price(v float64) *float64 { return &v }

func testProducts() []models.Product {
	op := 200.0
	return []models.Product{
		{ID: "a-0-0", Name: "Oxford Shirt", Description: "cotton shirt", Brand: "ComfortWear", CategoryID: "fashion", SubcategoryID: "mens-clothing", Price: 100, Rating: 4.5, Colors: []string{"Black", "White"}, Tags: []string{"modern"}, Featured: false},
		{ID: "a-0-1", Name: "Denim Jeans", Description: "stretch denim", Brand: "DenimCo", CategoryID: "fashion", SubcategoryID: "mens-clothing", Price: 150, OriginalPrice: &op, Rating: 4.0, Colors: []string{"Blue"}, Tags: []string{"trendy"}, Featured: true},
		{ID: "b-0-0", Name: "Silk Saree", Description: "handloom silk", Brand: "Heritage Weaves", CategoryID: "fashion", SubcategoryID: "womens-clothing", Price: 300, Rating: 4.8, Colors: []string{"Gold", "Maroon"}, Tags: []string{"traditional", "ethnic"}, Featured: false},
		{ID: "b-0-1", Name: "Maxi Dress", Description: "casual dress", Brand: "Casual Comfort", CategoryID: "fashion", SubcategoryID: "womens-clothing", Price: 80, Rating: 3.6, Colors: []string{"Red"}, Tags: []string{"everyday"}, Featured: true},
		{ID: "c-0-0", Name: "Leather Heels", Description: "elegant heels", Brand: "Style Co", CategoryID: "footwear", SubcategoryID: "womens-shoes", Price: 120, Rating: 4.2, Colors: []string{"Black"}, Tags: []string{"formal"}, Featured: false},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_Idempotent(t *testing.T) {
	products := testProducts()
	f := Filter{CategoryID: "fashion", MinRating: 4.0}

	first := Apply(products, f, SortRating)
	second := Apply(products, f, SortRating)
	assert.Equal(t, ids(first), ids(second))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	before := ids(products)

	Apply(products, Filter{}, SortPriceHigh)
	assert.Equal(t, before, ids(products))
}

func TestApply_CategoryAndSubcategory(t *testing.T) {
	products := testProducts()

	got := Apply(products, Filter{CategoryID: "fashion"}, "")
	assert.Len(t, got, 4)

	got = Apply(products, Filter{SubcategoryID: "womens-clothing"}, "")
	assert.Equal(t, []string{"b-0-0", "b-0-1"}, ids(got))

	// Unmatched ids yield an empty result, not an error.
	got = Apply(products, Filter{CategoryID: "electronics"}, "")
	assert.Empty(t, got)
}

func TestApply_QueryMatchesNameDescriptionBrandTags(t *testing.T) {
	products := testProducts()

	cases := []struct {
		query string
		want  []string
	}{
		{"oxford", []string{"a-0-0"}},         // name, case-insensitive
		{"handloom", []string{"b-0-0"}},       // description
		{"denimco", []string{"a-0-1"}},        // brand
		{"ethnic", []string{"b-0-0"}},         // tag
		{"nothing-matches-this", []string{}},  // no hit
	}
	for _, tc := range cases {
		got := Apply(products, Filter{Query: tc.query}, "")
		assert.Equal(t, tc.want, ids(got), "query %q", tc.query)
	}
}

func TestApply_EmptyAllowSetsMeanNoFilter(t *testing.T) {
	products := testProducts()

	got := Apply(products, Filter{Brands: nil, Colors: []string{}}, "")
	assert.Len(t, got, len(products))
}

func TestApply_BrandAndColorAllowSets(t *testing.T) {
	products := testProducts()

	got := Apply(products, Filter{Brands: []string{"DenimCo", "Style Co"}}, "")
	assert.Equal(t, []string{"a-0-1", "c-0-0"}, ids(got))

	// Color matches when at least one product color is in the set.
	got = Apply(products, Filter{Colors: []string{"Black"}}, "")
	assert.Equal(t, []string{"a-0-0", "c-0-0"}, ids(got))
}

func TestApply_RatingFloor(t *testing.T) {
	got := Apply(testProducts(), Filter{MinRating: 4.2}, "")
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 4.2)
	}
	assert.Equal(t, []string{"a-0-0", "b-0-0", "c-0-0"}, ids(got))
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	got := Apply(testProducts(), Filter{MinPrice: price(100), MaxPrice: price(150)}, "")
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.LessOrEqual(t, p.Price, 150.0)
	}
	// Bounds are inclusive: 100 and 150 both make the cut.
	assert.Equal(t, []string{"a-0-0", "a-0-1", "c-0-0"}, ids(got))
}

func TestApply_SortPrice(t *testing.T) {
	got := Apply(testProducts(), Filter{}, SortPriceLow)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}

	got = Apply(testProducts(), Filter{}, SortPriceHigh)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestApply_SortRating(t *testing.T) {
	got := Apply(testProducts(), Filter{}, SortRating)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestApply_SortNewest(t *testing.T) {
	got := Apply(testProducts(), Filter{}, SortNewest)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].ID, got[i].ID)
	}
}

func TestApply_SortFeaturedStable(t *testing.T) {
	got := Apply(testProducts(), Filter{}, SortFeatured)

	// All featured items precede all non-featured items.
	seenNonFeatured := false
	for _, p := range got {
		if !p.Featured {
			seenNonFeatured = true
		} else {
			assert.False(t, seenNonFeatured, "featured item %s after non-featured", p.ID)
		}
	}

	// Relative order within each group matches the pre-sort order.
	assert.Equal(t, []string{"a-0-1", "b-0-1", "a-0-0", "b-0-0", "c-0-0"}, ids(got))
}

func TestApply_ResultNoLargerThanInput(t *testing.T) {
	products := testProducts()
	got := Apply(products, Filter{Query: "a"}, SortRelevance)
	assert.LessOrEqual(t, len(got), len(products))
}
