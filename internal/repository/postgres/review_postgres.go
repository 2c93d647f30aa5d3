package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ReviewPostgres is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewPostgres struct {
	db *sql.DB
}

// NewReviewPostgres creates a new ReviewPostgres repository.
func NewReviewPostgres(db *sql.DB) *ReviewPostgres {
	return &ReviewPostgres{db: db}
}

var _ repository.ReviewRepository = (*ReviewPostgres)(nil)

// Create inserts a review and returns the stored record with the author's name.
func (r *ReviewPostgres) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO reviews (product_id, user_id, rating, comment, verified_purchase)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, product_id, user_id, rating, comment, verified_purchase, created_at
		)
		SELECT i.id, i.product_id, i.user_id, u.name, i.rating, i.comment, i.verified_purchase, i.created_at
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`
	row := r.db.QueryRowContext(ctx, q,
		rv.ProductID,
		rv.UserID,
		rv.Rating,
		rv.Comment,
		rv.VerifiedPurchase,
	)
	return scanReview(row)
}

// Exists reports whether userID already reviewed productID.
func (r *ReviewPostgres) Exists(ctx context.Context, productID, userID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, productID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ListByProduct returns a product's reviews newest first using LIMIT/OFFSET pagination and a total count.
func (r *ReviewPostgres) ListByProduct(ctx context.Context, productID int64, pq repository.PageQuery) (*repository.PageResult[model.Review], error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID,
	).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT r.id, r.product_id, r.user_id, u.name, r.rating, r.comment, r.verified_purchase, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, productID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Review]{
		Items: items,
		Total: total,
	}, nil
}

func scanReview(row rowScanner) (*model.Review, error) {
	var rv model.Review
	if err := row.Scan(
		&rv.ID,
		&rv.ProductID,
		&rv.UserID,
		&rv.UserName,
		&rv.Rating,
		&rv.Comment,
		&rv.VerifiedPurchase,
		&rv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rv, nil
}
