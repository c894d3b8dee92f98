package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Session representa uma sessão de visualização do dashboard: o intervalo
// escolhido nos dois seletores de data e o último dashboard exibido.
//
// Cada Refresh recebe um número de sequência crescente. Uma resposta que chega
// depois de um Refresh mais novo ter sido iniciado é descartada, então o
// dashboard exibido corresponde sempre à requisição mais recente.
type Session struct {
	reporter SalesReporter

	mu        sync.Mutex
	dateRange domain.DateRange
	issued    uint64
	current   *domain.SalesDashboard
}

// NewSession cria uma sessão sem limites de data selecionados
func NewSession(reporter SalesReporter) *Session {
	return &Session{
		reporter: reporter,
	}
}

// SetFrom altera o limite inicial; nil limpa a seleção
func (s *Session) SetFrom(from *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateRange.From = copyTime(from)
}

// SetTo altera o limite final; nil limpa a seleção
func (s *Session) SetTo(to *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateRange.To = copyTime(to)
}

// Range retorna o intervalo selecionado
func (s *Session) Range() domain.DateRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dateRange
}

// Current retorna o dashboard exibido, ou nil antes do primeiro Refresh
func (s *Session) Current() *domain.SalesDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Refresh monta o dashboard para o intervalo atual. O retorno applied indica se o
// resultado substituiu o dashboard exibido ou foi descartado por estar obsoleto.
func (s *Session) Refresh(ctx context.Context) (dashboard *domain.SalesDashboard, applied bool, err error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	dateRange := s.dateRange
	s.mu.Unlock()

	dashboard, err = s.reporter.BuildDashboard(ctx, dateRange)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued {
		logrus.WithFields(logrus.Fields{
			"sequence": seq,
			"latest":   s.issued,
		}).Debug("Resposta obsoleta do dashboard descartada")
		return dashboard, false, nil
	}

	s.current = dashboard

	return dashboard, true, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
