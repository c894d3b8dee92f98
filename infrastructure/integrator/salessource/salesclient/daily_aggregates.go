package salesclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type DailyAggregatesParams struct {
	From string // yyyy-MM-dd
	To   string // yyyy-MM-dd
}

type DailyAggregatesResponse []domain.SalesAggregateRecord

// StatusError indica que o servidor respondeu com status diferente de 200
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (c *SalesClient) GetDailyAggregates(ctx context.Context, params DailyAggregatesParams) (DailyAggregatesResponse, error) {
	var response DailyAggregatesResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.QueryURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.QueryPath)

	query := endpoint.Query()
	query.Set("from", params.From)
	query.Set("to", params.To)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.config.QueryToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.QueryToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}

// GetDocument baixa um documento estático por HTTP e retorna o corpo bruto
func (c *SalesClient) GetDocument(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o documento: %w", err)
	}

	return data, nil
}
