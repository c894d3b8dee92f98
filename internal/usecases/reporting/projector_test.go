package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestProjectSeries(t *testing.T) {
	t.Run("Cenário A - projeta o registro filtrado", func(t *testing.T) {
		filtered := FilterByDateRange(sampleRecords(), dateRange(t, "2024-01-02", "2024-01-05"))
		series := ProjectSeries(filtered)

		assert.Equal(t, []string{"2024-01-03"}, series.Labels)
		assert.Equal(t, []int{2}, series.Quantities)
		assert.Equal(t, []float64{40.0}, series.Revenues)
	})

	t.Run("Ordem e alinhamento por índice", func(t *testing.T) {
		records := []domain.SalesAggregateRecord{
			{DateKey: "2024-01-09", TotalQuantity: 3, TotalSales: 30.5},
			{DateKey: "2024-01-02", TotalQuantity: 0, TotalSales: 0},
			{DateKey: "2024-01-05", TotalQuantity: 1, TotalSales: 10},
		}
		series := ProjectSeries(records)

		require.Equal(t, len(records), series.Len())
		require.Len(t, series.Quantities, len(records))
		require.Len(t, series.Revenues, len(records))
		for i, record := range records {
			assert.Equal(t, record.DateKey, series.Labels[i])
			assert.Equal(t, record.TotalQuantity, series.Quantities[i])
			assert.Equal(t, record.TotalSales, series.Revenues[i])
		}
	})

	t.Run("Datas repetidas viram pontos separados", func(t *testing.T) {
		series := ProjectSeries([]domain.SalesAggregateRecord{
			{DateKey: "2024-01-01", TotalQuantity: 1, TotalSales: 1},
			{DateKey: "2024-01-01", TotalQuantity: 2, TotalSales: 2},
		})

		assert.Equal(t, []string{"2024-01-01", "2024-01-01"}, series.Labels)
		assert.Equal(t, []int{1, 2}, series.Quantities)
	})

	t.Run("Entrada vazia gera sequências vazias", func(t *testing.T) {
		series := ProjectSeries(nil)

		assert.NotNil(t, series.Labels)
		assert.NotNil(t, series.Quantities)
		assert.NotNil(t, series.Revenues)
		assert.Equal(t, 0, series.Len())
	})
}

func TestBuildCharts(t *testing.T) {
	t.Run("Série vazia não gera gráficos", func(t *testing.T) {
		quantity, revenue := BuildCharts(ProjectSeries(nil))
		assert.Nil(t, quantity)
		assert.Nil(t, revenue)
	})

	t.Run("Barra de quantidades e linha de receitas", func(t *testing.T) {
		series := ProjectSeries(sampleRecords())
		quantity, revenue := BuildCharts(series)

		require.NotNil(t, quantity)
		require.NotNil(t, revenue)

		assert.Equal(t, "bar", quantity.Type)
		assert.Equal(t, series.Labels, quantity.Labels)
		require.Len(t, quantity.Datasets, 1)
		assert.Equal(t, QuantityDatasetLabel, quantity.Datasets[0].Label)
		assert.Equal(t, []float64{5, 2}, quantity.Datasets[0].Data)

		assert.Equal(t, "line", revenue.Type)
		assert.Equal(t, series.Labels, revenue.Labels)
		require.Len(t, revenue.Datasets, 1)
		assert.Equal(t, RevenueDatasetLabel, revenue.Datasets[0].Label)
		assert.Equal(t, []float64{100.0, 40.0}, revenue.Datasets[0].Data)
		assert.True(t, revenue.Datasets[0].Fill)
	})
}
