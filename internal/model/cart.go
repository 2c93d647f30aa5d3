package model

import "github.com/shopspring/decimal"

// CartItem is one product line in a user's cart, priced at the product's current price.
type CartItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal is Price times Quantity.
func (it CartItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
