package services

import (
	"context"

	"fashion-store/models"
)

// CartStore is the per-user cart collection in the remote store.
type CartStore interface {
	Upsert(ctx context.Context, userID, productID string, quantity int, selectedColor, selectedSize string) error
	ListByUser(ctx context.Context, userID string) ([]models.CartRow, error)
	GetByID(ctx context.Context, userID, itemID string) (*models.CartRow, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	Delete(ctx context.Context, userID, itemID string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// WishlistStore is the per-user wishlist collection in the remote store.
// Insert reports a duplicate (user, product) pair as
// repositories.ErrDuplicate.
type WishlistStore interface {
	Insert(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]models.WishlistRow, error)
	Delete(ctx context.Context, userID, itemID string) error
}

// ProductIndex resolves product ids against the current catalog.
// *catalog.Store satisfies it.
type ProductIndex interface {
	ByID(id string) *models.Product
}
