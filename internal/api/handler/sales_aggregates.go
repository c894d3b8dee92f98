package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetDailyAggregates responde a consulta de agregados diários com os dois limites obrigatórios
func GetDailyAggregates(repo repository.SalesAggregateRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros from e to são obrigatórios", nil)
			return
		}

		dateRange, err := domain.ParseDateRange(from, to)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato yyyy-MM-dd", err.Error())
			return
		}

		logger = logger.WithFields(log.Fields{"from": from, "to": to})

		records, err := repo.GetDailyAggregates(r.Context(), *dateRange.From, *dateRange.To)
		if err != nil {
			logger.WithError(err).Error("sales: erro ao buscar agregados diários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar agregados de vendas", nil)
			return
		}

		if records == nil {
			records = []domain.SalesAggregateRecord{}
		}

		logger.WithField("sales_records", len(records)).Debug("sales: agregados diários retornados")

		if err := writeJSON(w, http.StatusOK, records); err != nil {
			logger.WithError(err).Error("sales: erro ao enviar resposta")
		}
	}
}

// CreateSaleRequest é o corpo aceito por POST /v1/sales
type CreateSaleRequest struct {
	SoldAt      string  `json:"sold_at"`
	Quantity    *int    `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

// parseSoldAt aceita RFC3339 ou apenas a data
func parseSoldAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

// CreateSale registra uma linha de venda
func CreateSale(repo repository.SalesAggregateRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.SoldAt == "" || req.Quantity == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campos sold_at e quantity são obrigatórios", nil)
			return
		}

		if *req.Quantity < 0 || req.TotalAmount < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade e valor não podem ser negativos", nil)
			return
		}

		soldAt, err := parseSoldAt(req.SoldAt)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sold_at deve ser RFC3339 ou yyyy-MM-dd", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("sales: erro ao gerar id da venda")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar venda", nil)
			return
		}

		sale := &domain.Sale{
			ID:          id,
			SoldAt:      soldAt,
			Quantity:    *req.Quantity,
			TotalAmount: utils.RoundWithTwoDecimalPlace(req.TotalAmount),
		}

		if err := repo.SaveSale(r.Context(), sale); err != nil {
			logger.WithError(err).Error("sales: erro ao salvar venda")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			return
		}

		logger.WithField("sales_id", sale.ID).Info("sales: venda registrada")

		if err := writeJSON(w, http.StatusCreated, sale); err != nil {
			logger.WithError(err).Error("sales: erro ao enviar resposta")
		}
	}
}
