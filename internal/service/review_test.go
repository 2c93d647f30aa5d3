package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/repository"
	repoMocks "storefront/internal/repository/mocks"
)

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		rating     int
		setupMocks func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository)
		wantErr    error
		wantField  bool
	}{
		{
			name:   "happy path",
			rating: 5,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
				mReviews.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
				mReviews.On("Create", ctx, mock.MatchedBy(func(r *model.Review) bool {
					return r.Rating == 5 && r.Comment == "Great" && r.VerifiedPurchase
				})).Return(&model.Review{ID: 11, ProductID: 1, UserID: 7, Rating: 5}, nil)
			},
		},
		{
			name:       "rating out of range",
			rating:     6,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {},
			wantField:  true,
		},
		{
			name:   "unknown product",
			rating: 4,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name:   "already reviewed",
			rating: 4,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
				mReviews.On("Exists", ctx, int64(1), int64(7)).Return(true, nil)
			},
			wantErr: ErrAlreadyReviewed,
		},
		{
			name:   "concurrent duplicate",
			rating: 4,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
				mReviews.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
				mReviews.On("Create", ctx, mock.Anything).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrAlreadyReviewed,
		},
		{
			name:   "unknown user",
			rating: 4,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
				mReviews.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
				mReviews.On("Create", ctx, mock.Anything).Return(nil, &pgconn.PgError{Code: "23503", ConstraintName: "reviews_user_id_fkey"})
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "product deleted before insert",
			rating: 4,
			setupMocks: func(mProducts *repoMocks.MockProductRepository, mReviews *repoMocks.MockReviewRepository) {
				mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
				mReviews.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
				mReviews.On("Create", ctx, mock.Anything).Return(nil, &pgconn.PgError{Code: "23503", ConstraintName: "reviews_product_id_fkey"})
			},
			wantErr: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mProducts := new(repoMocks.MockProductRepository)
			mReviews := new(repoMocks.MockReviewRepository)
			svc := NewReviewService(mProducts, mReviews)

			tt.setupMocks(mProducts, mReviews)

			r, err := svc.Create(ctx, 1, 7, tt.rating, "  Great ")

			switch {
			case tt.wantField:
				assert.True(t, IsValidation(err))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(11), r.ID)
			}
			mProducts.AssertExpectations(t)
			mReviews.AssertExpectations(t)
		})
	}
}

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("default page", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		svc := NewReviewService(mProducts, mReviews)

		mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
		mReviews.On("ListByProduct", ctx, int64(1), repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Review]{Items: []model.Review{{ID: 1}}, Total: 1}, nil)

		res, err := svc.List(ctx, 1, 0, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		mReviews.AssertExpectations(t)
	})

	t.Run("limit is capped", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		svc := NewReviewService(mProducts, mReviews)

		mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
		mReviews.On("ListByProduct", ctx, int64(1), repository.PageQuery{Limit: 100, Offset: 20}).
			Return(&repository.PageResult[model.Review]{}, nil)

		_, err := svc.List(ctx, 1, 500, 20)
		assert.NoError(t, err)
		mReviews.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mProducts := new(repoMocks.MockProductRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		svc := NewReviewService(mProducts, mReviews)

		mProducts.On("FindByID", ctx, int64(1)).Return(&model.Product{ID: 1}, nil)
		mReviews.On("ListByProduct", ctx, int64(1), mock.Anything).Return(nil, errors.New("db fail"))

		_, err := svc.List(ctx, 1, 10, 0)
		assert.Error(t, err)
	})
}
