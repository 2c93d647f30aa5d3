package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item as stored. Rating aggregates are computed from reviews.
type Product struct {
	ID                 int64
	Name               string
	Description        string
	Brand              string
	Price              decimal.Decimal
	OriginalPrice      decimal.NullDecimal
	DiscountPercent    decimal.Decimal
	StockQuantity      int
	ImageURL           string
	ImageKey           string
	PremiumEarlyAccess bool
	CategoryID         *int64
	CategoryName       string
	CreatedAt          time.Time
}

// RatingSummary is the live review aggregate of a product.
type RatingSummary struct {
	AverageRating float64
	ReviewCount   int
}

// Category groups products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
