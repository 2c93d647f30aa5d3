package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ReviewListResult is the service-level DTO for paginated reviews.
type ReviewListResult struct {
	Items []model.Review `json:"data"`
	Total int            `json:"total"`
}

// ReviewService handles product reviews. A user reviews a product at most once.
type ReviewService interface {
	Create(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error)
	List(ctx context.Context, productID int64, limit, offset int) (*ReviewListResult, error)
}

type reviewService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(products repository.ProductRepository, reviews repository.ReviewRepository) ReviewService {
	return &reviewService{products: products, reviews: reviews}
}

func (s *reviewService) Create(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, invalid("rating", "rating must be between 1 and 5")
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	exists, err := s.reviews.Exists(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	stored, err := s.reviews.Create(ctx, &model.Review{
		ProductID:        productID,
		UserID:           userID,
		Rating:           rating,
		Comment:          strings.TrimSpace(comment),
		VerifiedPurchase: true,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		if ref := missingReference(err); ref != nil {
			return nil, ref
		}
		return nil, fmt.Errorf("save review: %w", err)
	}
	return stored, nil
}

func (s *reviewService) List(ctx context.Context, productID int64, limit, offset int) (*ReviewListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	res, err := s.reviews.ListByProduct(ctx, productID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ReviewListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *reviewService) ensureProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return ErrProductNotFound
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if isNoRows(err) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
