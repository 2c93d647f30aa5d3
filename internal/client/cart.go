package client

import (
	"context"
	"net/http"
)

// CartClient calls the cart endpoints.
type CartClient struct{ c *Client }

// NewCartClient returns a CartClient sending through c.
func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

// AddToCart adds one unit of the product and returns the updated cart.
func (cc *CartClient) AddToCart(ctx context.Context, productID int64) (*Cart, error) {
	body := struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}{ProductID: productID, Quantity: 1}

	var cart Cart
	if err := cc.c.Do(ctx, http.MethodPost, "/api/user/cart/items", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
