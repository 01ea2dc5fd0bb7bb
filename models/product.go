package models

// Product is a single catalog entry. Prices are in rupees.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url"`
	Images        []string `json:"images,omitempty"`
	CategoryID    string   `json:"category_id"`
	SubcategoryID string   `json:"subcategory_id"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Tags          []string `json:"tags"`
	InStock       bool     `json:"in_stock"`
	Featured      bool     `json:"featured,omitempty"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ParentCategory   string           `json:"parent_category"`
	SubSubcategories []SubSubcategory `json:"sub_subcategories,omitempty"`
}

type SubSubcategory struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ParentSubcategory string `json:"parent_subcategory"`
}
