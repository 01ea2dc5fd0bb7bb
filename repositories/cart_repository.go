package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashion-store/models"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// Upsert inserts a cart row or, when the (user, product, color, size)
// variant already exists, overwrites its quantity.
func (r *CartRepository) Upsert(ctx context.Context, userID, productID string, quantity int, selectedColor, selectedSize string) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, selected_color, selected_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id, product_id, selected_color, selected_size)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		uuid.NewString(), userID, productID, quantity, selectedColor, selectedSize, time.Now(),
	)
	return err
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]models.CartRow, error) {
	query := `SELECT id, user_id, product_id, quantity, selected_color, selected_size, created_at, updated_at
	          FROM cart_items WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartRow{}
	for rows.Next() {
		var row models.CartRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.ProductID, &row.Quantity,
			&row.SelectedColor, &row.SelectedSize, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

// GetByID resolves a single row. Rows are always addressed together with
// their owner so one user cannot touch another's cart.
func (r *CartRepository) GetByID(ctx context.Context, userID, itemID string) (*models.CartRow, error) {
	query := `SELECT id, user_id, product_id, quantity, selected_color, selected_size, created_at, updated_at
	          FROM cart_items WHERE id = $1 AND user_id = $2`

	var row models.CartRow
	err := r.db.QueryRow(ctx, query, itemID, userID).Scan(&row.ID, &row.UserID, &row.ProductID,
		&row.Quantity, &row.SelectedColor, &row.SelectedSize, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	tag, err := r.db.Exec(ctx, query, quantity, time.Now(), itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	return err
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
