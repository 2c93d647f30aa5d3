package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/repository"
)

// CartLine is one cart line as returned to clients.
type CartLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Cart is the service-level DTO of a user's cart. Amounts are summed as decimals and
// rounded to cents only when converted for the response.
type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// CartService manages the signed-in user's cart.
type CartService interface {
	// Add puts quantity units of a product in the cart; quantities below 1 count as 1.
	Add(ctx context.Context, userID, productID int64, quantity int) error
	Get(ctx context.Context, userID int64) (*Cart, error)
}

type cartService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
}

// NewCartService constructs a new CartService.
func NewCartService(products repository.ProductRepository, carts repository.CartRepository) CartService {
	return &cartService{products: products, carts: carts}
}

func (s *cartService) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if productID <= 0 {
		return ErrProductNotFound
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if isNoRows(err) {
			return ErrProductNotFound
		}
		return err
	}
	if err := s.carts.AddItem(ctx, userID, productID, quantity); err != nil {
		if ref := missingReference(err); ref != nil {
			return ref
		}
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (s *cartService) Get(ctx context.Context, userID int64) (*Cart, error) {
	items, err := s.carts.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		sub := it.Subtotal()
		total = total.Add(sub)
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price.InexactFloat64(),
			Quantity:  it.Quantity,
			Subtotal:  sub.Round(2).InexactFloat64(),
		})
	}
	return &Cart{Items: lines, Total: total.Round(2).InexactFloat64()}, nil
}
