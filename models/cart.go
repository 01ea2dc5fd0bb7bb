package models

import "time"

// CartItem is one cart row with the product display fields denormalized
// at fetch time. Distinct color/size selections of the same product are
// distinct rows.
type CartItem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	ImageURL      string    `json:"image_url"`
	Brand         string    `json:"brand"`
	Quantity      int       `json:"quantity"`
	SelectedColor string    `json:"selected_color,omitempty"`
	SelectedSize  string    `json:"selected_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WishlistItem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	ImageURL      string    `json:"image_url"`
	Brand         string    `json:"brand"`
	Rating        float64   `json:"rating"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
}

// CartRow is the persisted portion of a cart line item, before the
// product join fills in display fields.
type CartRow struct {
	ID            string
	UserID        string
	ProductID     string
	Quantity      int
	SelectedColor string
	SelectedSize  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WishlistRow is the persisted portion of a wishlist item.
type WishlistRow struct {
	ID        string
	UserID    string
	ProductID string
	CreatedAt time.Time
}
