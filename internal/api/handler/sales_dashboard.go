package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesDashboard monta o dashboard do intervalo. Falhas de aquisição voltam
// com status 200 dentro do campo error do payload.
func GetSalesDashboard(reporter reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		dateRange, err := domain.ParseDateRange(from, to)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato yyyy-MM-dd", err.Error())
			return
		}

		logger = logger.WithFields(log.Fields{
			"from":       from,
			"to":         to,
			"sales_mode": reporter.SourceMode(),
		})

		dashboard, err := reporter.BuildDashboard(r.Context(), dateRange)
		if err != nil {
			logger.WithError(err).Warn("dashboard: requisição cancelada")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Requisição cancelada", nil)
			return
		}

		if dashboard.Error != nil {
			logger.WithField("sales_error_kind", dashboard.Error.Kind).Warn("dashboard: falha ao obter vendas")
		} else {
			logger.WithField("sales_records", dashboard.Records).Debug("dashboard: montado")
		}

		if err := writeJSON(w, http.StatusOK, dashboard); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
		}
	}
}
