package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartPostgres_AddItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO cart_items (.+) ON CONFLICT \\(user_id, product_id\\) DO UPDATE").
		WithArgs(int64(7), int64(1), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewCartPostgres(db).AddItem(context.Background(), 7, 1, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartPostgres_ListItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT ci.product_id, p.name, p.price, ci.quantity").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "price", "quantity"}).
			AddRow(1, "Galaxy S24", "74999.00", 2))

	items, err := NewCartPostgres(db).ListItems(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("74999").Equal(items[0].Price))
	assert.Equal(t, "149998", items[0].Subtotal().String())
	assert.Equal(t, 2, items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
