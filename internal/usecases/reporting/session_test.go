package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSession_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockSalesReporter(ctrl)

	session := NewSession(reporter)
	assert.Nil(t, session.Current())

	session.SetFrom(day(2024, 1, 2))
	session.SetTo(day(2024, 1, 5))

	expected := &domain.SalesDashboard{Records: 1}
	reporter.EXPECT().
		BuildDashboard(gomock.Any(), domain.DateRange{From: day(2024, 1, 2), To: day(2024, 1, 5)}).
		Return(expected, nil)

	dashboard, applied, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Same(t, expected, dashboard)
	assert.Same(t, expected, session.Current())
}

func TestSession_SetBoundsCopiesValue(t *testing.T) {
	session := NewSession(nil)
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	session.SetFrom(&from)
	from = from.AddDate(0, 1, 0)

	assert.Equal(t, "2024-01-02", session.Range().FromKey())

	session.SetFrom(nil)
	assert.Nil(t, session.Range().From)
}

func TestSession_Refresh_DiscardsStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockSalesReporter(ctrl)
	session := NewSession(reporter)

	stale := &domain.SalesDashboard{Records: 10}
	latest := &domain.SalesDashboard{Records: 2}

	started := make(chan struct{})
	release := make(chan struct{})

	firstRange := domain.DateRange{From: day(2024, 1, 1), To: day(2024, 1, 31)}
	secondRange := domain.DateRange{From: day(2024, 2, 1), To: day(2024, 2, 29)}

	reporter.EXPECT().
		BuildDashboard(gomock.Any(), firstRange).
		DoAndReturn(func(context.Context, domain.DateRange) (*domain.SalesDashboard, error) {
			close(started)
			<-release
			return stale, nil
		})
	reporter.EXPECT().
		BuildDashboard(gomock.Any(), secondRange).
		Return(latest, nil)

	session.SetFrom(firstRange.From)
	session.SetTo(firstRange.To)

	type result struct {
		applied bool
		err     error
	}
	done := make(chan result, 1)
	go func() {
		_, applied, err := session.Refresh(context.Background())
		done <- result{applied: applied, err: err}
	}()

	<-started

	// Usuário troca o intervalo enquanto a primeira consulta ainda está pendente
	session.SetFrom(secondRange.From)
	session.SetTo(secondRange.To)

	_, applied, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)

	close(release)
	first := <-done
	require.NoError(t, first.err)
	assert.False(t, first.applied)

	assert.Same(t, latest, session.Current())
}

func TestSession_Refresh_ReporterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockSalesReporter(ctrl)
	session := NewSession(reporter)

	previous := &domain.SalesDashboard{Records: 1}
	reporter.EXPECT().BuildDashboard(gomock.Any(), gomock.Any()).Return(previous, nil)
	_, _, err := session.Refresh(context.Background())
	require.NoError(t, err)

	reporter.EXPECT().BuildDashboard(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)
	_, applied, err := session.Refresh(context.Background())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, applied)
	assert.Same(t, previous, session.Current())
}
