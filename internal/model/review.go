package model

import "time"

// Review is a single user's rating of a product.
type Review struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"productId"`
	UserID           int64     `json:"userId"`
	UserName         string    `json:"userName,omitempty"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verifiedPurchase"`
	CreatedAt        time.Time `json:"createdAt"`
}
