package client

import "storefront/internal/model"

// Category is the nested category some product payloads carry.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a product as the API returns it. The comparison and detail endpoints name
// some fields differently, so the alternatives are all optional.
type Product struct {
	ID                 *int64    `json:"id,omitempty"`
	ProductID          *int64    `json:"productId,omitempty"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Brand              *string   `json:"brand,omitempty"`
	Price              *float64  `json:"price,omitempty"`
	Rating             *float64  `json:"rating,omitempty"`
	AverageRating      *float64  `json:"averageRating,omitempty"`
	ReviewCount        *int64    `json:"reviewCount,omitempty"`
	Stock              *int64    `json:"stock,omitempty"`
	StockQuantity      *int64    `json:"stockQuantity,omitempty"`
	CategoryName       *string   `json:"categoryName,omitempty"`
	Category           *Category `json:"category,omitempty"`
	PremiumEarlyAccess *bool     `json:"premiumEarlyAccess,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
}

// UpdateProfileRequest changes only the non-empty fields.
type UpdateProfileRequest struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// SubscriptionResponse is returned by subscribe and cancel. Cancel only fills Message and Active.
type SubscriptionResponse struct {
	SubscriptionID int64       `json:"subscriptionId,omitempty"`
	PlanType       string      `json:"planType,omitempty"`
	StartDate      *model.Date `json:"startDate,omitempty"`
	EndDate        *model.Date `json:"endDate,omitempty"`
	Active         bool        `json:"active"`
	AutoRenew      bool        `json:"autoRenew"`
	Message        string      `json:"message"`
}

// CartItem is one line of the cart.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Cart is the signed-in user's cart.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
