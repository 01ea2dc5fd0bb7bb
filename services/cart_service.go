// Package services holds the storefront business logic: the cart and
// wishlist synchronizer and account management. All state of record
// lives behind the store interfaces; every mutation is written first and
// the authoritative rows are read back before they are returned.
package services

import (
	"context"
	"errors"
	"log"

	"fashion-store/models"
	"fashion-store/repositories"
)

// CartService mediates between callers and the per-user cart and
// wishlist collections. An empty userID means the caller is anonymous:
// reads return empty collections and mutations fail with ErrAuthRequired
// before any store call.
type CartService struct {
	carts     CartStore
	wishlists WishlistStore
	products  ProductIndex
}

func NewCartService(carts CartStore, wishlists WishlistStore, products ProductIndex) *CartService {
	return &CartService{carts: carts, wishlists: wishlists, products: products}
}

// AddToCart upserts a line item keyed by (user, product, color, size):
// re-adding the exact same variant overwrites its quantity instead of
// creating a second row. Returns the refreshed cart.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int, selectedColor, selectedSize string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if s.products.ByID(productID) == nil {
		return nil, ErrProductNotFound
	}

	if err := s.carts.Upsert(ctx, userID, productID, quantity, selectedColor, selectedSize); err != nil {
		return nil, err
	}
	return s.FetchCartItems(ctx, userID)
}

// RemoveFromCart deletes one row by its identifier and returns the
// refreshed cart.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, itemID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if err := s.carts.Delete(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.FetchCartItems(ctx, userID)
}

// UpdateCartQuantity sets the quantity of one row. Quantities below one
// are rejected, not clamped.
func (s *CartService) UpdateCartQuantity(ctx context.Context, userID, itemID string, quantity int) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := s.carts.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.FetchCartItems(ctx, userID)
}

// ClearCart deletes every row for the user. The result is known to be
// empty, so no read-back is issued.
func (s *CartService) ClearCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	return []models.CartItem{}, nil
}

// AddToWishlist inserts a (user, product) row. A duplicate insert is
// benign: the current wishlist is returned together with
// ErrAlreadyInWishlist so callers can report it as information rather
// than failure.
func (s *CartService) AddToWishlist(ctx context.Context, userID, productID string) ([]models.WishlistItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if s.products.ByID(productID) == nil {
		return nil, ErrProductNotFound
	}

	if err := s.wishlists.Insert(ctx, userID, productID); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			items, fetchErr := s.FetchWishlistItems(ctx, userID)
			if fetchErr != nil {
				return nil, fetchErr
			}
			return items, ErrAlreadyInWishlist
		}
		return nil, err
	}
	return s.FetchWishlistItems(ctx, userID)
}

// RemoveFromWishlist deletes one row by its identifier and returns the
// refreshed wishlist.
func (s *CartService) RemoveFromWishlist(ctx context.Context, userID, itemID string) ([]models.WishlistItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	if err := s.wishlists.Delete(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.FetchWishlistItems(ctx, userID)
}

// MoveToWishlist adds the product of a cart row to the wishlist and then
// removes the cart row. The two writes are independent remote calls, in
// insert-then-delete order: a failure in between leaves the item in both
// collections rather than in neither, and the duplicate insert on retry
// is benign, so repeating the operation converges.
func (s *CartService) MoveToWishlist(ctx context.Context, userID, cartItemID string) ([]models.CartItem, []models.WishlistItem, error) {
	if userID == "" {
		return nil, nil, ErrAuthRequired
	}

	row, err := s.carts.GetByID(ctx, userID, cartItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, err
	}

	if err := s.wishlists.Insert(ctx, userID, row.ProductID); err != nil && !errors.Is(err, repositories.ErrDuplicate) {
		return nil, nil, err
	}
	if err := s.carts.Delete(ctx, userID, cartItemID); err != nil {
		return nil, nil, err
	}

	cartItems, err := s.FetchCartItems(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	wishlistItems, err := s.FetchWishlistItems(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return cartItems, wishlistItems, nil
}

// FetchCartItems reads the user's cart rows and joins each against the
// current product record to fill the display fields. Rows whose product
// is no longer in the catalog are dropped from the view.
func (s *CartService) FetchCartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return []models.CartItem{}, nil
	}

	rows, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	for _, row := range rows {
		p := s.products.ByID(row.ProductID)
		if p == nil {
			log.Printf("cart row %s references unknown product %s, skipping", row.ID, row.ProductID)
			continue
		}
		items = append(items, models.CartItem{
			ID:            row.ID,
			UserID:        row.UserID,
			ProductID:     row.ProductID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			ImageURL:      p.ImageURL,
			Brand:         p.Brand,
			Quantity:      row.Quantity,
			SelectedColor: row.SelectedColor,
			SelectedSize:  row.SelectedSize,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return items, nil
}

// FetchWishlistItems reads the user's wishlist with product display
// fields joined in.
func (s *CartService) FetchWishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	if userID == "" {
		return []models.WishlistItem{}, nil
	}

	rows, err := s.wishlists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := []models.WishlistItem{}
	for _, row := range rows {
		p := s.products.ByID(row.ProductID)
		if p == nil {
			log.Printf("wishlist row %s references unknown product %s, skipping", row.ID, row.ProductID)
			continue
		}
		items = append(items, models.WishlistItem{
			ID:            row.ID,
			UserID:        row.UserID,
			ProductID:     row.ProductID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			ImageURL:      p.ImageURL,
			Brand:         p.Brand,
			Rating:        p.Rating,
			InStock:       p.InStock,
			CreatedAt:     row.CreatedAt,
		})
	}
	return items, nil
}

// TotalItems sums quantities across cart line items.
func TotalItems(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across cart line items.
func TotalPrice(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Summary bundles both aggregates for response payloads.
func Summary(items []models.CartItem) models.CartSummary {
	return models.CartSummary{
		TotalItems: TotalItems(items),
		TotalPrice: TotalPrice(items),
	}
}
