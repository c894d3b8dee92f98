package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// DateRange é o par opcional de limites inclusivos usado para restringir os registros.
// Um limite nil significa que o usuário ainda não escolheu aquela data.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// ParseDateRange converte duas datas yyyy-MM-dd em um DateRange; string vazia vira limite ausente
func ParseDateRange(from, to string) (DateRange, error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("data inicial inválida %q: %w", from, err)
	}

	toDate, err := utils.ParseDate(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("data final inválida %q: %w", to, err)
	}

	return DateRange{From: fromDate, To: toDate}, nil
}

// IsComplete informa se os dois limites foram informados
func (r DateRange) IsComplete() bool {
	return r.From != nil && r.To != nil
}

// FromKey retorna o limite inicial formatado, ou "" se ausente
func (r DateRange) FromKey() string {
	return formatBound(r.From)
}

// ToKey retorna o limite final formatado, ou "" se ausente
func (r DateRange) ToKey() string {
	return formatBound(r.To)
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// CalendarDay trunca um instante para a meia-noite UTC do mesmo dia de calendário
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
