package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"fashion-store/models"
)

// Generation bands. Price lands within 85-115% of the template base
// price; a 25% markup "original price" appears on 40% of products.
const (
	priceBandLow      = 0.85
	priceBandWidth    = 0.30
	originalPriceProb = 0.40
	markupFactor      = 1.25
	ratingFloor       = 3.5
	ratingBand        = 1.4
	reviewCountMax    = 300
	reviewCountMin    = 20
	inStockProb       = 0.95
	featuredProb      = 0.15
)

// variantRand returns a random source seeded from the product id, so
// every regeneration of the catalog yields the same prices, ratings and
// flags for a given id. Cart rows persisted across restarts stay
// consistent with the catalog they were added from.
func variantRand(productID string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(productID))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// generate expands every templated sub-subcategory into variantsPerTemplate
// product variants.
func generate(variantsPerTemplate int) []models.Product {
	products := []models.Product{}

	for _, category := range Taxonomy() {
		for _, subcategory := range category.Subcategories {
			for _, subSub := range subcategory.SubSubcategories {
				templates, ok := productTemplates[subSub.ID]
				if !ok {
					continue
				}
				for ti, tmpl := range templates {
					for i := 0; i < variantsPerTemplate; i++ {
						id := fmt.Sprintf("%s-%d-%d", subSub.ID, ti, i)
						r := variantRand(id)

						price := round2(tmpl.BasePrice * (priceBandLow + r.Float64()*priceBandWidth))
						var originalPrice *float64
						if r.Float64() < originalPriceProb {
							op := round2(price * markupFactor)
							originalPrice = &op
						}
						rating := round1(ratingFloor + r.Float64()*ratingBand)
						reviewCount := reviewCountMin + r.Intn(reviewCountMax)
						brand := tmpl.Brands[r.Intn(len(tmpl.Brands))]
						inStock := r.Float64() < inStockProb
						featured := r.Float64() < featuredProb

						products = append(products, models.Product{
							ID:            id,
							Name:          fmt.Sprintf("%s %d", tmpl.Name, i+1),
							Description:   tmpl.Description,
							Price:         price,
							OriginalPrice: originalPrice,
							ImageURL:      imageURL(subSub.ID),
							CategoryID:    category.ID,
							SubcategoryID: subcategory.ID,
							Brand:         brand,
							Rating:        rating,
							ReviewCount:   reviewCount,
							Colors:        colorsFor(subSub.ID),
							Sizes:         sizesFor(category.ID, subSub.ID),
							Tags:          tagsFor(subSub.ID),
							InStock:       inStock,
							Featured:      featured,
						})
					}
				}
			}
		}
	}

	return products
}

func imageURL(subSubID string) string {
	return fmt.Sprintf("/assets/products/%s.jpg", subSubID)
}
