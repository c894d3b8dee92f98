package domain

// SalesSeries são as três sequências paralelas usadas pelos gráficos;
// o índice i das três descreve sempre o mesmo registro de origem
type SalesSeries struct {
	Labels     []string  `json:"labels"`
	Quantities []int     `json:"quantities"`
	Revenues   []float64 `json:"revenues"`
}

// Len retorna o número de pontos da série
func (s SalesSeries) Len() int {
	return len(s.Labels)
}

// ChartDataset é um conjunto de dados no formato aceito pelo renderizador de gráficos
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
}

// ChartData é a entrada completa de um gráfico
type ChartData struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// DashboardError é o erro exibido no lugar dos gráficos
type DashboardError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SalesDashboard é a página de vendas montada para um intervalo
type SalesDashboard struct {
	Range         DateRange       `json:"range"`
	Records       int             `json:"records"`
	Series        SalesSeries     `json:"series"`
	QuantityChart *ChartData      `json:"quantity_chart,omitempty"`
	RevenueChart  *ChartData      `json:"revenue_chart,omitempty"`
	Error         *DashboardError `json:"error,omitempty"`
}

// HasCharts informa se há dados suficientes para desenhar os gráficos
func (d *SalesDashboard) HasCharts() bool {
	return d != nil && d.QuantityChart != nil && d.RevenueChart != nil
}
