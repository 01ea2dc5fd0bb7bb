package catalog

import (
	"strings"

	"fashion-store/models"
)

// productTemplate is one named product with a base price; the generator
// expands each template into several priced variants.
type productTemplate struct {
	Name        string
	BasePrice   float64
	Description string
	Brands      []string
}

// Taxonomy returns the fixed three-level category tree. It is defined
// once at process start and never mutated.
func Taxonomy() []models.Category {
	return []models.Category{
		{
			ID:   "fashion",
			Name: "Fashion",
			Subcategories: []models.Subcategory{
				{
					ID: "mens-clothing", Name: "Men's Clothing", ParentCategory: "fashion",
					SubSubcategories: []models.SubSubcategory{
						{ID: "mens-traditional", Name: "Traditional Wear", ParentSubcategory: "mens-clothing"},
						{ID: "mens-western", Name: "Western Wear", ParentSubcategory: "mens-clothing"},
						{ID: "mens-casual", Name: "Casual Wear", ParentSubcategory: "mens-clothing"},
						{ID: "mens-formal", Name: "Formal Wear", ParentSubcategory: "mens-clothing"},
						{ID: "mens-ethnic", Name: "Ethnic Wear", ParentSubcategory: "mens-clothing"},
					},
				},
				{
					ID: "womens-clothing", Name: "Women's Clothing", ParentCategory: "fashion",
					SubSubcategories: []models.SubSubcategory{
						{ID: "womens-traditional", Name: "Traditional Wear", ParentSubcategory: "womens-clothing"},
						{ID: "womens-western", Name: "Western Wear", ParentSubcategory: "womens-clothing"},
						{ID: "womens-casual", Name: "Casual Wear", ParentSubcategory: "womens-clothing"},
						{ID: "womens-formal", Name: "Formal Wear", ParentSubcategory: "womens-clothing"},
						{ID: "womens-ethnic", Name: "Ethnic Wear", ParentSubcategory: "womens-clothing"},
					},
				},
				{
					ID: "kids-clothing", Name: "Kids' Clothing", ParentCategory: "fashion",
					SubSubcategories: []models.SubSubcategory{
						{ID: "kids-traditional", Name: "Traditional Wear", ParentSubcategory: "kids-clothing"},
						{ID: "kids-western", Name: "Western Wear", ParentSubcategory: "kids-clothing"},
						{ID: "kids-casual", Name: "Casual Wear", ParentSubcategory: "kids-clothing"},
						{ID: "kids-formal", Name: "Formal Wear", ParentSubcategory: "kids-clothing"},
					},
				},
			},
		},
		{
			ID:   "footwear",
			Name: "Footwear",
			Subcategories: []models.Subcategory{
				{
					ID: "mens-shoes", Name: "Men's Shoes", ParentCategory: "footwear",
					SubSubcategories: []models.SubSubcategory{
						{ID: "mens-formal-shoes", Name: "Formal Shoes", ParentSubcategory: "mens-shoes"},
						{ID: "mens-casual-shoes", Name: "Casual Shoes", ParentSubcategory: "mens-shoes"},
						{ID: "mens-sports-shoes", Name: "Sports Shoes", ParentSubcategory: "mens-shoes"},
						{ID: "mens-sandals", Name: "Sandals & Slippers", ParentSubcategory: "mens-shoes"},
						{ID: "mens-boots", Name: "Boots", ParentSubcategory: "mens-shoes"},
					},
				},
				{
					ID: "womens-shoes", Name: "Women's Shoes", ParentCategory: "footwear",
					SubSubcategories: []models.SubSubcategory{
						{ID: "womens-heels", Name: "Heels", ParentSubcategory: "womens-shoes"},
						{ID: "womens-flats", Name: "Flats", ParentSubcategory: "womens-shoes"},
						{ID: "womens-sneakers", Name: "Sneakers", ParentSubcategory: "womens-shoes"},
						{ID: "womens-sandals", Name: "Sandals", ParentSubcategory: "womens-shoes"},
						{ID: "womens-boots", Name: "Boots", ParentSubcategory: "womens-shoes"},
					},
				},
				{
					ID: "kids-shoes", Name: "Kids' Shoes", ParentCategory: "footwear",
					SubSubcategories: []models.SubSubcategory{
						{ID: "kids-school-shoes", Name: "School Shoes", ParentSubcategory: "kids-shoes"},
						{ID: "kids-sports-shoes", Name: "Sports Shoes", ParentSubcategory: "kids-shoes"},
						{ID: "kids-casual-shoes", Name: "Casual Shoes", ParentSubcategory: "kids-shoes"},
						{ID: "kids-sandals", Name: "Sandals", ParentSubcategory: "kids-shoes"},
					},
				},
			},
		},
		{
			ID:   "accessories",
			Name: "Accessories",
			Subcategories: []models.Subcategory{
				{
					ID: "bags", Name: "Bags & Luggage", ParentCategory: "accessories",
					SubSubcategories: []models.SubSubcategory{
						{ID: "handbags", Name: "Handbags", ParentSubcategory: "bags"},
						{ID: "backpacks", Name: "Backpacks", ParentSubcategory: "bags"},
						{ID: "travel-bags", Name: "Travel Bags", ParentSubcategory: "bags"},
						{ID: "laptop-bags", Name: "Laptop Bags", ParentSubcategory: "bags"},
						{ID: "wallets", Name: "Wallets", ParentSubcategory: "bags"},
					},
				},
				{
					ID: "jewelry", Name: "Jewelry", ParentCategory: "accessories",
					SubSubcategories: []models.SubSubcategory{
						{ID: "necklaces", Name: "Necklaces", ParentSubcategory: "jewelry"},
						{ID: "earrings", Name: "Earrings", ParentSubcategory: "jewelry"},
						{ID: "rings", Name: "Rings", ParentSubcategory: "jewelry"},
						{ID: "bracelets", Name: "Bracelets", ParentSubcategory: "jewelry"},
						{ID: "jewelry-sets", Name: "Jewelry Sets", ParentSubcategory: "jewelry"},
					},
				},
				{
					ID: "watches", Name: "Watches", ParentCategory: "accessories",
					SubSubcategories: []models.SubSubcategory{
						{ID: "mens-watches", Name: "Men's Watches", ParentSubcategory: "watches"},
						{ID: "womens-watches", Name: "Women's Watches", ParentSubcategory: "watches"},
						{ID: "smart-watches", Name: "Smart Watches", ParentSubcategory: "watches"},
						{ID: "luxury-watches", Name: "Luxury Watches", ParentSubcategory: "watches"},
						{ID: "kids-watches", Name: "Kids' Watches", ParentSubcategory: "watches"},
					},
				},
				{
					ID: "eyewear", Name: "Eyewear", ParentCategory: "accessories",
					SubSubcategories: []models.SubSubcategory{
						{ID: "sunglasses", Name: "Sunglasses", ParentSubcategory: "eyewear"},
						{ID: "prescription-glasses", Name: "Prescription Glasses", ParentSubcategory: "eyewear"},
						{ID: "reading-glasses", Name: "Reading Glasses", ParentSubcategory: "eyewear"},
						{ID: "contact-lenses", Name: "Contact Lenses", ParentSubcategory: "eyewear"},
					},
				},
			},
		},
		{
			ID:   "electronics",
			Name: "Electronics",
			Subcategories: []models.Subcategory{
				{
					ID: "mobile-phones", Name: "Mobile Phones", ParentCategory: "electronics",
					SubSubcategories: []models.SubSubcategory{
						{ID: "smartphones", Name: "Smartphones", ParentSubcategory: "mobile-phones"},
						{ID: "feature-phones", Name: "Feature Phones", ParentSubcategory: "mobile-phones"},
						{ID: "phone-accessories", Name: "Phone Accessories", ParentSubcategory: "mobile-phones"},
					},
				},
				{
					ID: "laptops", Name: "Laptops & Computers", ParentCategory: "electronics",
					SubSubcategories: []models.SubSubcategory{
						{ID: "laptops-notebooks", Name: "Laptops", ParentSubcategory: "laptops"},
						{ID: "desktop-computers", Name: "Desktop Computers", ParentSubcategory: "laptops"},
						{ID: "tablets", Name: "Tablets", ParentSubcategory: "laptops"},
						{ID: "computer-accessories", Name: "Computer Accessories", ParentSubcategory: "laptops"},
					},
				},
				{
					ID: "audio", Name: "Audio & Headphones", ParentCategory: "electronics",
					SubSubcategories: []models.SubSubcategory{
						{ID: "headphones", Name: "Headphones", ParentSubcategory: "audio"},
						{ID: "earphones", Name: "Earphones", ParentSubcategory: "audio"},
						{ID: "speakers", Name: "Speakers", ParentSubcategory: "audio"},
						{ID: "sound-systems", Name: "Sound Systems", ParentSubcategory: "audio"},
					},
				},
			},
		},
	}
}

// productTemplates maps sub-subcategory ids to their product templates.
// Only sub-subcategories listed here yield generated products.
var productTemplates = map[string][]productTemplate{
	"mens-traditional": {
		{Name: "Premium Cotton Kurta", BasePrice: 3999.99, Description: "Handwoven cotton kurta with elegant design and comfortable fit", Brands: []string{"Heritage Craft", "Tradition Plus", "Ethnic Elegance"}},
		{Name: "Silk Dhoti Set", BasePrice: 2499.99, Description: "Traditional silk dhoti with premium fabric and ethnic styling", Brands: []string{"Traditional Craft", "Ethnic Style"}},
		{Name: "Royal Wedding Sherwani", BasePrice: 16499.99, Description: "Luxurious sherwani with intricate embroidery for special occasions", Brands: []string{"Royal Collection", "Wedding Couture"}},
		{Name: "Designer Nehru Jacket", BasePrice: 6599.99, Description: "Contemporary Nehru jacket with modern cut and traditional appeal", Brands: []string{"Classic Style", "Modern Traditional"}},
	},
	"mens-western": {
		{Name: "Premium Oxford Shirt", BasePrice: 3299.99, Description: "High-quality cotton Oxford shirt for formal and casual wear", Brands: []string{"ComfortWear", "Daily Style", "Urban Fit"}},
		{Name: "Stretch Denim Jeans", BasePrice: 4999.99, Description: "Premium stretchable denim jeans with perfect fit and comfort", Brands: []string{"DenimCo", "Blue Label", "Flex Jeans"}},
		{Name: "Organic Cotton T-Shirt", BasePrice: 1699.99, Description: "Soft organic cotton t-shirt in trendy colors and designs", Brands: []string{"BasicWear", "Cotton Plus", "Comfort Zone"}},
		{Name: "Tailored Chino Pants", BasePrice: 4099.99, Description: "Stylish tailored chinos perfect for smart casual occasions", Brands: []string{"Urban Style", "Casual Fit", "Modern Wear"}},
	},
	"mens-casual": {
		{Name: "Premium Polo Shirt", BasePrice: 2899.99, Description: "Classic polo shirt with moisture-wicking fabric for active wear", Brands: []string{"Polo Club", "Casual Classic", "Sport Style"}},
		{Name: "Multi-Pocket Cargo Pants", BasePrice: 3699.99, Description: "Durable cargo pants with multiple pockets and comfortable fit", Brands: []string{"Adventure Wear", "Utility Style", "Outdoor Gear"}},
		{Name: "Fleece Pullover Hoodie", BasePrice: 4599.99, Description: "Warm fleece hoodie perfect for cool weather and casual outings", Brands: []string{"Comfort Zone", "Street Style", "Urban Casual"}},
		{Name: "Performance Sports Shorts", BasePrice: 2099.99, Description: "Breathable athletic shorts with moisture-wicking technology", Brands: []string{"Summer Wear", "Cool Comfort", "Active Style"}},
	},
	"mens-formal": {
		{Name: "Executive Business Suit", BasePrice: 24999.99, Description: "Professional business suit with perfect tailoring and premium fabric", Brands: []string{"Executive Style", "Business Elite", "Corporate Couture"}},
		{Name: "Premium Dress Shirt", BasePrice: 4099.99, Description: "Crisp premium cotton dress shirt for formal occasions", Brands: []string{"Formal Plus", "Executive Shirt", "Business Style"}},
		{Name: "Designer Blazer", BasePrice: 12499.99, Description: "Elegant designer blazer for business meetings and formal events", Brands: []string{"Professional Wear", "Business Class", "Executive Style"}},
		{Name: "Tailored Formal Trousers", BasePrice: 5799.99, Description: "Well-tailored formal trousers with perfect fit", Brands: []string{"Formal Fit", "Business Wear", "Office Style"}},
	},
	"womens-traditional": {
		{Name: "Handloom Silk Saree", BasePrice: 7499.99, Description: "Beautiful handloom silk saree with traditional motifs", Brands: []string{"Heritage Weaves", "Traditional Silk", "Ethnic Collection"}},
		{Name: "Designer Salwar Kameez", BasePrice: 5799.99, Description: "Elegant salwar kameez set with embroidered dupatta", Brands: []string{"Ethnic Elegance", "Traditional Wear", "Heritage Style"}},
		{Name: "Bridal Lehenga Choli", BasePrice: 16499.99, Description: "Stunning bridal lehenga with heavy embroidery work", Brands: []string{"Bridal Collection", "Festive Wear", "Royal Heritage"}},
		{Name: "Cotton Kurti Set", BasePrice: 3299.99, Description: "Stylish cotton kurti with palazzo for daily traditional wear", Brands: []string{"Daily Traditional", "Ethnic Comfort", "Modern Heritage"}},
	},
	"womens-western": {
		{Name: "Designer Denim Jeans", BasePrice: 4999.99, Description: "Trendy women's designer jeans with perfect fit and style", Brands: []string{"Fashion Denim", "Style Co", "Trendy Fit"}},
		{Name: "Party Cocktail Dress", BasePrice: 6599.99, Description: "Elegant cocktail dress perfect for parties and events", Brands: []string{"Fashion Forward", "Style Statement", "Elegant Wear"}},
		{Name: "Stylish Crop Top", BasePrice: 2899.99, Description: "Trendy crop top in contemporary design and premium fabric", Brands: []string{"Modern Style", "Fashion Plus", "Trendy Tops"}},
		{Name: "A-Line Midi Skirt", BasePrice: 3699.99, Description: "Fashionable A-line midi skirt in various colors", Brands: []string{"Style Central", "Fashion Hub", "Trendy Wear"}},
	},
	"womens-casual": {
		{Name: "Comfortable Maxi Dress", BasePrice: 4099.99, Description: "Comfortable maxi dress perfect for everyday casual wear", Brands: []string{"Casual Comfort", "Daily Style", "Easy Wear"}},
		{Name: "Stretch Jeggings", BasePrice: 3299.99, Description: "Super comfortable jeggings with stretch fabric and perfect fit", Brands: []string{"Comfort Fit", "Stretch Style", "Flexible Wear"}},
		{Name: "Casual Top", BasePrice: 1499.99, Description: "Relaxed fit top for casual outings", Brands: []string{"Casual Zone", "Comfort Wear", "Relaxed Style"}},
		{Name: "Cozy Knit Cardigan", BasePrice: 2799.99, Description: "Cozy cardigan for layering", Brands: []string{"Comfort Layer", "Cozy Wear", "Soft Style"}},
	},
	"kids-casual": {
		{Name: "Kids Graphic T-Shirt", BasePrice: 799.99, Description: "Fun and colorful t-shirt for kids", Brands: []string{"Kids Fun", "Playful Style", "Junior Wear"}},
		{Name: "Kids Denim Jeans", BasePrice: 1499.99, Description: "Durable jeans for active kids", Brands: []string{"Kids Denim", "Play Wear", "Junior Style"}},
		{Name: "Kids Party Dress", BasePrice: 1299.99, Description: "Adorable dress for little girls", Brands: []string{"Little Princess", "Kids Fashion", "Cute Wear"}},
		{Name: "Kids Play Shorts", BasePrice: 999.99, Description: "Comfortable shorts for play time", Brands: []string{"Active Kids", "Play Comfort", "Junior Active"}},
	},
}

func colorsFor(subSubID string) []string {
	switch {
	case strings.Contains(subSubID, "mens") && !strings.Contains(subSubID, "womens"):
		return []string{"Black", "White", "Navy", "Grey", "Brown"}
	case strings.Contains(subSubID, "womens"):
		return []string{"Black", "White", "Red", "Pink", "Blue", "Green", "Purple"}
	case strings.Contains(subSubID, "kids"):
		return []string{"Red", "Blue", "Pink", "Yellow", "Green", "Purple", "Orange"}
	case strings.Contains(subSubID, "traditional"):
		return []string{"Maroon", "Gold", "Royal Blue", "Green", "Pink"}
	case strings.Contains(subSubID, "formal"):
		return []string{"Black", "White", "Navy", "Grey", "Charcoal"}
	case strings.Contains(subSubID, "casual"):
		return []string{"Blue", "Black", "White", "Grey", "Red"}
	default:
		return []string{"Black", "White", "Navy", "Grey", "Brown"}
	}
}

func sizesFor(categoryID, subSubID string) []string {
	if categoryID == "footwear" {
		return []string{"6", "7", "8", "9", "10", "11", "12"}
	}
	if strings.Contains(subSubID, "kids") {
		return []string{"2-3Y", "4-5Y", "6-7Y", "8-9Y", "10-11Y", "12-13Y"}
	}
	return []string{"XS", "S", "M", "L", "XL", "XXL"}
}

func tagsFor(subSubID string) []string {
	tagSets := []struct {
		key  string
		tags []string
	}{
		{"traditional", []string{"traditional", "ethnic", "cultural", "handwoven"}},
		{"western", []string{"modern", "trendy", "contemporary", "stylish"}},
		{"casual", []string{"comfortable", "relaxed", "everyday", "easy-wear"}},
		{"formal", []string{"professional", "elegant", "sophisticated", "business"}},
		{"luxury", []string{"premium", "luxury", "high-end", "exclusive"}},
		{"sports", []string{"athletic", "performance", "active", "breathable"}},
	}
	for _, set := range tagSets {
		if strings.Contains(subSubID, set.key) {
			return set.tags
		}
	}
	return []string{"quality", "comfortable", "stylish", "durable"}
}
