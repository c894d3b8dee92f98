package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestDailyAggregatesByRangeQuery(t *testing.T) {
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	query, args, err := dailyAggregatesByRangeQuery(from, to).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "to_char(s.sold_at::date, 'YYYY-MM-DD') AS date_key")
	assert.Contains(t, query, "FROM sales s")
	assert.Contains(t, query, "s.sold_at::date >= $1")
	assert.Contains(t, query, "s.sold_at::date <= $2")
	assert.Contains(t, query, "GROUP BY date_key")
	assert.Contains(t, query, "ORDER BY date_key ASC")
	assert.Equal(t, []any{"2024-01-02", "2024-01-05"}, args)
}

func TestDailyAggregatesQuery_NoRange(t *testing.T) {
	query, args, err := dailyAggregatesQuery().ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestSaveSaleQuery(t *testing.T) {
	soldAt := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	sale := &domain.Sale{ID: "abc123", SoldAt: soldAt, Quantity: 2, TotalAmount: 40}

	query, args, err := saveSaleQuery(sale).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO sales (id,sold_at,quantity,total_amount) VALUES ($1,$2,$3,$4) RETURNING created_at", query)
	assert.Equal(t, []any{"abc123", soldAt, 2, 40.0}, args)
}

func TestGetDailyAggregates_InvertedRange(t *testing.T) {
	// Intervalo invertido não chega ao banco
	repo := NewSalesAggregateRepository(nil)

	records, err := repo.GetDailyAggregates(
		context.Background(),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}
