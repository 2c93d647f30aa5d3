package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/storage"
)

const (
	minCompare = 2
	maxCompare = 4
)

// ProductDetail is the product page payload.
type ProductDetail struct {
	ProductID          int64     `json:"productId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Brand              string    `json:"brand"`
	Price              float64   `json:"price"`
	OriginalPrice      *float64  `json:"originalPrice,omitempty"`
	DiscountPercent    float64   `json:"discountPercent"`
	StockQuantity      int       `json:"stockQuantity"`
	AverageRating      float64   `json:"averageRating"`
	ReviewCount        int       `json:"reviewCount"`
	CategoryName       string    `json:"categoryName,omitempty"`
	PremiumEarlyAccess bool      `json:"premiumEarlyAccess"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ProductComparison is one column of a side-by-side comparison.
type ProductComparison struct {
	ProductID          int64   `json:"productId"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	Rating             float64 `json:"rating"`
	ReviewCount        int     `json:"reviewCount"`
	Stock              int     `json:"stock"`
	CategoryName       string  `json:"categoryName,omitempty"`
	PremiumEarlyAccess bool    `json:"premiumEarlyAccess"`
	ImageURL           string  `json:"imageUrl,omitempty"`
}

// ProductService serves catalog reads with live review aggregates.
type ProductService interface {
	Get(ctx context.Context, id int64) (*ProductDetail, error)
	// Compare returns 2 to 4 distinct products in the requested order.
	Compare(ctx context.Context, ids []int64) ([]ProductComparison, error)
}

type productService struct {
	products      repository.ProductRepository
	store         storage.Storage
	presignExpiry time.Duration
	logger        *slog.Logger
}

// NewProductService constructs a new ProductService. store may be nil when images are not stored in object storage.
func NewProductService(products repository.ProductRepository, store storage.Storage, presignExpiry time.Duration, logger *slog.Logger) ProductService {
	return &productService{products: products, store: store, presignExpiry: presignExpiry, logger: logger}
}

func (s *productService) Get(ctx context.Context, id int64) (*ProductDetail, error) {
	if id <= 0 {
		return nil, ErrProductNotFound
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	ratings, err := s.products.RatingSummaries(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}
	r := ratings[id]

	return &ProductDetail{
		ProductID:          p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Brand:              p.Brand,
		Price:              p.Price.InexactFloat64(),
		OriginalPrice:      optionalFloat(p.OriginalPrice),
		DiscountPercent:    p.DiscountPercent.InexactFloat64(),
		StockQuantity:      p.StockQuantity,
		AverageRating:      r.AverageRating,
		ReviewCount:        r.ReviewCount,
		CategoryName:       p.CategoryName,
		PremiumEarlyAccess: p.PremiumEarlyAccess,
		ImageURL:           s.imageURL(ctx, p),
		CreatedAt:          p.CreatedAt,
	}, nil
}

func (s *productService) Compare(ctx context.Context, ids []int64) ([]ProductComparison, error) {
	if len(ids) < minCompare || len(ids) > maxCompare {
		return nil, invalid("productIds", fmt.Sprintf("select between %d and %d products to compare", minCompare, maxCompare))
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, invalid("productIds", "product ids must be positive")
		}
		if _, dup := seen[id]; dup {
			return nil, invalid("productIds", "product ids must be distinct")
		}
		seen[id] = struct{}{}
	}

	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	byID := make(map[int64]model.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ratings, err := s.products.RatingSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("rating summaries: %w", err)
	}

	out := make([]ProductComparison, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		r := ratings[id]
		out = append(out, ProductComparison{
			ProductID:          p.ID,
			Name:               p.Name,
			Description:        p.Description,
			Brand:              p.Brand,
			Price:              p.Price.InexactFloat64(),
			Rating:             r.AverageRating,
			ReviewCount:        r.ReviewCount,
			Stock:              p.StockQuantity,
			CategoryName:       p.CategoryName,
			PremiumEarlyAccess: p.PremiumEarlyAccess,
			ImageURL:           s.imageURL(ctx, &p),
		})
	}
	return out, nil
}

func (s *productService) imageURL(ctx context.Context, p *model.Product) string {
	if p.ImageKey == "" || s.store == nil {
		return p.ImageURL
	}
	url, err := s.store.PresignGet(ctx, p.ImageKey, s.presignExpiry)
	if err != nil {
		s.logger.Warn("image_presign_failed", "product_id", p.ID, "object_key", p.ImageKey, "error_message", err.Error())
		return p.ImageURL
	}
	return url
}

func optionalFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}
