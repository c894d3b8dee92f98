package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sales_aggregate.go -destination=mocks/mock_sales_aggregate.go -package=mocks

const (
	salesTable = "sales s"

	dateKeyColumn       = "to_char(s.sold_at::date, 'YYYY-MM-DD') AS date_key"
	totalQuantityColumn = "COALESCE(SUM(s.quantity), 0) AS total_quantity"
	totalSalesColumn    = "COALESCE(SUM(s.total_amount), 0) AS total_sales"
)

type SalesAggregateRepository interface {
	GetDailyAggregates(ctx context.Context, from, to time.Time) ([]domain.SalesAggregateRecord, error)
	ListDailyAggregates(ctx context.Context) ([]domain.SalesAggregateRecord, error)
	SaveSale(ctx context.Context, sale *domain.Sale) error
}

type salesAggregateRepository struct {
	conn postgres.Queryer
}

func NewSalesAggregateRepository(conn postgres.Queryer) SalesAggregateRepository {
	return &salesAggregateRepository{
		conn: conn,
	}
}

func dailyAggregatesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(dateKeyColumn, totalQuantityColumn, totalSalesColumn).
		From(salesTable).
		GroupBy("date_key").
		OrderBy("date_key ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func dailyAggregatesByRangeQuery(from, to time.Time) squirrel.SelectBuilder {
	return dailyAggregatesQuery().
		Where(squirrel.GtOrEq{"s.sold_at::date": from.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.sold_at::date": to.Format(time.DateOnly)})
}

// GetDailyAggregates soma as vendas por dia com os dois limites inclusivos
func (r *salesAggregateRepository) GetDailyAggregates(ctx context.Context, from, to time.Time) ([]domain.SalesAggregateRecord, error) {
	if from.After(to) {
		return []domain.SalesAggregateRecord{}, nil
	}

	query, args, err := dailyAggregatesByRangeQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAggregates(ctx, query, args...)
}

// ListDailyAggregates retorna os agregados de todos os dias com vendas
func (r *salesAggregateRepository) ListDailyAggregates(ctx context.Context) ([]domain.SalesAggregateRecord, error) {
	query, args, err := dailyAggregatesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAggregates(ctx, query, args...)
}

func (r *salesAggregateRepository) queryAggregates(ctx context.Context, query string, args ...any) ([]domain.SalesAggregateRecord, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesAggregateRecord, 0)
	for rows.Next() {
		var record domain.SalesAggregateRecord
		if err := rows.Scan(&record.DateKey, &record.TotalQuantity, &record.TotalSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado de vendas: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func saveSaleQuery(sale *domain.Sale) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "sold_at", "quantity", "total_amount").
		Values(sale.ID, sale.SoldAt, sale.Quantity, sale.TotalAmount).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)
}

// SaveSale registra uma linha de venda do PDV
func (r *salesAggregateRepository) SaveSale(ctx context.Context, sale *domain.Sale) error {
	query, args, err := saveSaleQuery(sale).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
