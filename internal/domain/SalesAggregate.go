package domain

import (
	"time"
)

// SalesAggregateRecord representa o total de vendas de um único dia
type SalesAggregateRecord struct {
	DateKey       string  `json:"_id"` // Data no formato yyyy-MM-dd
	TotalQuantity int     `json:"totalQuantity"`
	TotalSales    float64 `json:"totalSales"`
}

// Date interpreta a chave do registro como data de calendário (UTC)
func (r SalesAggregateRecord) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, r.DateKey)
}

// Sale representa uma linha de venda registrada pelo PDV
type Sale struct {
	ID          string    `json:"id"`
	SoldAt      time.Time `json:"sold_at"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
