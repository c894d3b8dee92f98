package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporting.go -package=mocks

// SalesReporter monta o dashboard de vendas para um intervalo
type SalesReporter interface {
	// BuildDashboard busca, filtra e projeta os registros. Erros de aquisição ficam
	// no campo Error do dashboard; apenas o cancelamento do contexto é retornado.
	BuildDashboard(ctx context.Context, r domain.DateRange) (*domain.SalesDashboard, error)

	// SourceMode informa a estratégia de aquisição configurada
	SourceMode() string
}
