package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// CartPostgres is a PostgreSQL implementation of repository.CartRepository.
type CartPostgres struct {
	db *sql.DB
}

// NewCartPostgres creates a new CartPostgres repository.
func NewCartPostgres(db *sql.DB) *CartPostgres {
	return &CartPostgres{db: db}
}

var _ repository.CartRepository = (*CartPostgres)(nil)

// AddItem inserts a cart line, adding to the quantity when the product is already in the cart.
func (r *CartPostgres) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	const q = `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := r.db.ExecContext(ctx, q, userID, productID, quantity)
	return err
}

// ListItems returns the user's cart lines ordered by product id.
func (r *CartPostgres) ListItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const q = `
		SELECT ci.product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.product_id
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
