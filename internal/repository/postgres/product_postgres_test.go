package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "name", "description", "brand", "price", "original_price", "discount_percent",
	"stock_quantity", "image_url", "image_key", "premium_early_access",
	"category_id", "category_name", "created_at",
}

func TestProductPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(productRowColumns).
			AddRow(1, "Galaxy S24", "Flagship", "Samsung", "74999.00", "79999.00", "6.25",
				15, "https://img/1.png", "", true, 2, "Electronics", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM products p LEFT JOIN categories c (.+) WHERE p.id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		p, err := repo.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("74999").Equal(p.Price))
		require.True(t, p.OriginalPrice.Valid)
		assert.True(t, decimal.RequireFromString("79999").Equal(p.OriginalPrice.Decimal))
		assert.Equal(t, "6.25", p.DiscountPercent.String())
		assert.Equal(t, "Electronics", p.CategoryName)
		require.NotNil(t, p.CategoryID)
		assert.True(t, p.PremiumEarlyAccess)
	})

	t.Run("uncategorised without original price", func(t *testing.T) {
		rows := sqlmock.NewRows(productRowColumns).
			AddRow(2, "Mug", "", "", "199.50", nil, "0", 0, "", "", false, nil, "", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM products").
			WithArgs(int64(2)).
			WillReturnRows(rows)

		p, err := repo.FindByID(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "199.5", p.Price.String())
		assert.False(t, p.OriginalPrice.Valid)
		assert.Nil(t, p.CategoryID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductPostgres_FindByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(productRowColumns).
		AddRow(2, "B", "", "", "10", nil, "0", 1, "", "", false, nil, "", time.Now()).
		AddRow(1, "A", "", "", "20", nil, "0", 1, "", "", false, nil, "", time.Now())
	mock.ExpectQuery("WHERE p.id = ANY").
		WithArgs("{1,2}").
		WillReturnRows(rows)

	items, err := NewProductPostgres(db).FindByIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductPostgres_RatingSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT product_id, COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\)").
		WithArgs("{1,2,3}").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "avg", "count"}).
			AddRow(1, "4.3333333333333333", 3).
			AddRow(3, "4.3400000000000000", 50))

	got, err := NewProductPostgres(db).RatingSummaries(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	assert.InDelta(t, 4.3333333333333333, got[1].AverageRating, 1e-12)
	assert.Equal(t, 3, got[1].ReviewCount)
	assert.Equal(t, 4.34, got[3].AverageRating)
	assert.Less(t, got[1].AverageRating, got[3].AverageRating)
	_, ok := got[2]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInt64Array(t *testing.T) {
	assert.Equal(t, "{}", int64Array(nil))
	assert.Equal(t, "{4,10}", int64Array([]int64{4, 10}))
}
