package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashion-store/models"
)

type WishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Insert adds a wishlist row. A second insert for the same (user,
// product) pair returns ErrDuplicate.
func (r *WishlistRepository) Insert(ctx context.Context, userID, productID string) error {
	query := `INSERT INTO wishlist_items (id, user_id, product_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, uuid.NewString(), userID, productID, time.Now())
	if isUniqueViolation(err) {
		return fmt.Errorf("wishlist insert for product %s: %w", productID, ErrDuplicate)
	}
	return err
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WishlistRow, error) {
	query := `SELECT id, user_id, product_id, created_at FROM wishlist_items WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WishlistRow{}
	for rows.Next() {
		var row models.WishlistRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.ProductID, &row.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

func (r *WishlistRepository) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	return err
}
