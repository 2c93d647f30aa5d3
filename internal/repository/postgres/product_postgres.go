package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

const productSelect = `
	SELECT p.id, p.name, p.description, p.brand, p.price, p.original_price, p.discount_percent,
	       p.stock_quantity, p.image_url, p.image_key, p.premium_early_access,
	       p.category_id, COALESCE(c.name, ''), p.created_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p          model.Product
		categoryID sql.NullInt64
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Brand,
		&p.Price,
		&p.OriginalPrice,
		&p.DiscountPercent,
		&p.StockQuantity,
		&p.ImageURL,
		&p.ImageKey,
		&p.PremiumEarlyAccess,
		&categoryID,
		&p.CategoryName,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := categoryID.Int64
		p.CategoryID = &id
	}
	return &p, nil
}

// FindByID fetches one product with its category name.
func (r *ProductPostgres) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id)
	return scanProduct(row)
}

// FindByIDs fetches every existing product among ids.
func (r *ProductPostgres) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` WHERE p.id = ANY($1::bigint[])`, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// RatingSummaries aggregates reviews per product.
func (r *ProductPostgres) RatingSummaries(ctx context.Context, ids []int64) (map[int64]model.RatingSummary, error) {
	const q = `
		SELECT product_id, COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE product_id = ANY($1::bigint[])
		GROUP BY product_id
	`
	rows, err := r.db.QueryContext(ctx, q, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]model.RatingSummary, len(ids))
	for rows.Next() {
		var (
			id    int64
			avg   decimal.Decimal
			count int
		)
		if err := rows.Scan(&id, &avg, &count); err != nil {
			return nil, err
		}
		out[id] = model.RatingSummary{
			AverageRating: avg.InexactFloat64(),
			ReviewCount:   count,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// int64Array renders ids as a PostgreSQL array literal such as {1,2,3}.
func int64Array(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
