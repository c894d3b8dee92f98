package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeSalesSnapshot = "sales-snapshot"
)

// SyncJob é o contrato mínimo de um job agendado exposto pela API
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	SalesSnapshotExport SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSalesSnapshot:
			if services.SalesSnapshotExport == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação de vendas não disponível", nil)
				return
			}
			services.SalesSnapshotExport.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sales-snapshot", nil)
			return
		}

		logger.WithField("sales_cron_type", cronType).Info("cron: execução manual iniciada")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := writeJSON(w, http.StatusAccepted, response); err != nil {
			logger.WithError(err).Error("cron: erro ao enviar resposta")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SalesSnapshotExport != nil {
			status[CronJobTypeSalesSnapshot] = services.SalesSnapshotExport.GetStatus()
		}

		if err := writeJSON(w, http.StatusOK, status); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cron: erro ao enviar status")
		}
	}
}
