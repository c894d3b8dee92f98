package salesclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_salesclient.go -package=mocks

type Client interface {
	GetDailyAggregates(ctx context.Context, params DailyAggregatesParams) (DailyAggregatesResponse, error)
	GetDocument(ctx context.Context, location string) ([]byte, error)
}

type SalesClient struct {
	httpClient *http.Client
	config     config.SalesSource
}

// NewClient cria um cliente HTTP para a API de agregados de vendas
func NewClient(cfg config.SalesSource) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SalesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
