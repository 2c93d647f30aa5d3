package client

import (
	"context"
	"net/http"
	"strconv"
)

// ProductClient calls the product endpoints.
type ProductClient struct{ c *Client }

// NewProductClient returns a ProductClient sending through c.
func NewProductClient(c *Client) *ProductClient { return &ProductClient{c: c} }

// CompareProducts returns the products in the order of ids.
func (pc *ProductClient) CompareProducts(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	if err := pc.c.Do(ctx, http.MethodPost, "/api/products/compare", ids, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetProduct fetches one product by id.
func (pc *ProductClient) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := pc.c.Do(ctx, http.MethodGet, "/api/products/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
