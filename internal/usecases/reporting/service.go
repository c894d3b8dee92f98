package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salessource"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Service implementa SalesReporter sobre uma SalesRecordSource
type Service struct {
	source salessource.SalesRecordSource
}

// NewService cria uma nova instância do serviço de relatórios de vendas
func NewService(source salessource.SalesRecordSource) *Service {
	return &Service{
		source: source,
	}
}

func (s *Service) SourceMode() string {
	return s.source.Mode()
}

func (s *Service) BuildDashboard(ctx context.Context, r domain.DateRange) (*domain.SalesDashboard, error) {
	startTime := time.Now()

	dashboard := &domain.SalesDashboard{
		Range:  r,
		Series: ProjectSeries(nil),
	}

	records, err := s.source.Fetch(ctx, r)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err != nil {
		dashboard.Error = domain.NewDashboardError(err)

		logrus.WithFields(logrus.Fields{
			"mode":  s.source.Mode(),
			"from":  r.FromKey(),
			"to":    r.ToKey(),
			"kind":  dashboard.Error.Kind,
			"error": err.Error(),
		}).Warn("Dashboard de vendas montado sem dados")

		return dashboard, nil
	}

	filtered := FilterByDateRange(records, r)
	dashboard.Records = len(filtered)
	dashboard.Series = ProjectSeries(filtered)
	dashboard.QuantityChart, dashboard.RevenueChart = BuildCharts(dashboard.Series)

	logrus.WithFields(logrus.Fields{
		"mode":     s.source.Mode(),
		"from":     r.FromKey(),
		"to":       r.ToKey(),
		"fetched":  len(records),
		"filtered": len(filtered),
		"duration": time.Since(startTime).String(),
	}).Debug("Dashboard de vendas montado")

	return dashboard, nil
}
