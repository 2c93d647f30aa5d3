package model

import "time"

// Role is the account role stored on a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// User is a storefront account.
// PasswordHash and AvatarKey never leave the server; AvatarURL is resolved per request.
type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Role          Role       `json:"role"`
	PremiumStatus bool       `json:"premiumStatus"`
	PremiumExpiry *Date      `json:"premiumExpiry,omitempty"`
	AvatarURL     string     `json:"avatarUrl,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	PasswordHash  string     `json:"-"`
	AvatarKey     string     `json:"-"`
	UpdatedAt     *time.Time `json:"-"`
}
