package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Datas ausentes viram limites nil", func(t *testing.T) {
		r, err := ParseDateRange("", "")
		require.NoError(t, err)
		assert.Nil(t, r.From)
		assert.Nil(t, r.To)
		assert.False(t, r.IsComplete())
	})

	t.Run("Apenas data inicial", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-02", "")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02", r.FromKey())
		assert.Equal(t, "", r.ToKey())
		assert.False(t, r.IsComplete())
	})

	t.Run("Intervalo completo", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-02", "2024-01-05")
		require.NoError(t, err)
		assert.True(t, r.IsComplete())
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *r.To)
	})

	t.Run("Data malformada", func(t *testing.T) {
		_, err := ParseDateRange("02/01/2024", "")
		assert.Error(t, err)
	})
}

func TestCalendarDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), CalendarDay(in))
}

func TestFetchErrorClassification(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name        string
		err         error
		wantKind    string
		wantMessage string
	}{
		{
			name:        "Intervalo incompleto",
			err:         NewFetchError(ErrMissingRange, nil),
			wantKind:    FetchErrorMissingRange,
			wantMessage: MessageMissingRange,
		},
		{
			name:        "Arquivo local inválido",
			err:         NewFetchError(ErrSourceUnavailable, cause),
			wantKind:    FetchErrorSourceUnavailable,
			wantMessage: MessageSourceUnavailable,
		},
		{
			name:        "Falha de rede embrulhada",
			err:         fmt.Errorf("dashboard: %w", NewFetchError(ErrNetworkOrServer, cause)),
			wantKind:    FetchErrorNetworkOrServer,
			wantMessage: MessageNetworkOrServer,
		},
		{
			name:        "Erro desconhecido usa mensagem genérica",
			err:         cause,
			wantKind:    FetchErrorUnknown,
			wantMessage: MessageNetworkOrServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, FetchErrorKind(tt.err))
			assert.Equal(t, tt.wantMessage, UserMessage(tt.err))

			dashErr := NewDashboardError(tt.err)
			require.NotNil(t, dashErr)
			assert.Equal(t, tt.wantKind, dashErr.Kind)
		})
	}

	assert.Nil(t, NewDashboardError(nil))
}

func TestFetchError_UnwrapCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewFetchError(ErrSourceUnavailable, cause)

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "sales source unavailable: unexpected EOF", err.Error())
}
