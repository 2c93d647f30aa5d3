package repository

import (
	"context"

	"storefront/internal/model"
)

// Package repository contains data access abstractions; implementations live in subpackages.
// Lookups that find nothing return sql.ErrNoRows unwrapped so services can translate it.

// UserRepository persists storefront accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// EmailTaken reports whether another user (not excludeID) owns email.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	// UpdateProfile writes name, email, password hash and avatar key and returns the stored row.
	UpdateProfile(ctx context.Context, u *model.User) (*model.User, error)
}

// SubscriptionRepository persists premium subscriptions together with the owner's premium flag.
type SubscriptionRepository interface {
	// FindByUser returns the user's subscription row, active or not.
	FindByUser(ctx context.Context, userID int64) (*model.Subscription, error)
	// FindActiveByUser returns the user's subscription only while it is active.
	FindActiveByUser(ctx context.Context, userID int64) (*model.Subscription, error)
	// Activate upserts sub and marks the user premium until sub.EndDate, atomically.
	Activate(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	// Deactivate stores sub as inactive and clears the user's premium flag, atomically.
	Deactivate(ctx context.Context, sub *model.Subscription) error
}

// ProductRepository reads the catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	// RatingSummaries returns live review aggregates keyed by product id; products without reviews are absent.
	RatingSummaries(ctx context.Context, ids []int64) (map[int64]model.RatingSummary, error)
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) (*model.Review, error)
	Exists(ctx context.Context, productID, userID int64) (bool, error)
	ListByProduct(ctx context.Context, productID int64, pq PageQuery) (*PageResult[model.Review], error)
}

// CartRepository persists cart lines.
type CartRepository interface {
	// AddItem inserts a line or increments the quantity of an existing one.
	AddItem(ctx context.Context, userID, productID int64, quantity int) error
	ListItems(ctx context.Context, userID int64) ([]model.CartItem, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
