package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FilterByDateRange mantém os registros cuja data está em [From, To], com os dois
// limites inclusivos e comparação por dia de calendário. Sem um dos limites a
// entrada é devolvida sem alteração. A ordem de entrada é preservada.
func FilterByDateRange(records []domain.SalesAggregateRecord, r domain.DateRange) []domain.SalesAggregateRecord {
	if !r.IsComplete() {
		return records
	}

	from := domain.CalendarDay(*r.From)
	to := domain.CalendarDay(*r.To)

	filtered := make([]domain.SalesAggregateRecord, 0, len(records))
	if from.After(to) {
		return filtered
	}

	for _, record := range records {
		date, err := record.Date()
		if err != nil {
			// Data inválida não satisfaz nenhum limite
			continue
		}

		if date.Before(from) || date.After(to) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}
