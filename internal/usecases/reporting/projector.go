package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Estilo dos gráficos do dashboard de vendas
const (
	QuantityDatasetLabel = "Total Quantity Sold"
	RevenueDatasetLabel  = "Total Sales"

	chartTypeBar  = "bar"
	chartTypeLine = "line"

	accentColor     = "#ff0000"
	revenueFillArea = "rgba(255, 0, 0, 0.2)"
)

// ProjectSeries separa os registros em rótulos, quantidades e receitas alinhados
// pelo índice. Não ordena nem remove datas repetidas.
func ProjectSeries(records []domain.SalesAggregateRecord) domain.SalesSeries {
	series := domain.SalesSeries{
		Labels:     make([]string, 0, len(records)),
		Quantities: make([]int, 0, len(records)),
		Revenues:   make([]float64, 0, len(records)),
	}

	for _, record := range records {
		series.Labels = append(series.Labels, record.DateKey)
		series.Quantities = append(series.Quantities, record.TotalQuantity)
		series.Revenues = append(series.Revenues, record.TotalSales)
	}

	return series
}

// BuildCharts monta o gráfico de barras de quantidades e o de linha de receitas.
// Série vazia não gera gráfico.
func BuildCharts(series domain.SalesSeries) (quantity *domain.ChartData, revenue *domain.ChartData) {
	if series.Len() == 0 {
		return nil, nil
	}

	quantities := make([]float64, len(series.Quantities))
	for i, q := range series.Quantities {
		quantities[i] = float64(q)
	}

	quantity = &domain.ChartData{
		Type:   chartTypeBar,
		Labels: series.Labels,
		Datasets: []domain.ChartDataset{
			{
				Label:           QuantityDatasetLabel,
				Data:            quantities,
				BackgroundColor: accentColor,
			},
		},
	}

	revenue = &domain.ChartData{
		Type:   chartTypeLine,
		Labels: series.Labels,
		Datasets: []domain.ChartDataset{
			{
				Label:           RevenueDatasetLabel,
				Data:            series.Revenues,
				BorderColor:     accentColor,
				BackgroundColor: revenueFillArea,
				Fill:            true,
			},
		},
	}

	return quantity, revenue
}
