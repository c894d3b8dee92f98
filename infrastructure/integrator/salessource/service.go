package salessource

import (
	"context"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salessource/salesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_salessource.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SalesRecordSource obtém os agregados diários de vendas para um intervalo.
// Cada chamada faz exatamente uma leitura externa; não há cache nem retentativa.
type SalesRecordSource interface {
	Fetch(ctx context.Context, r domain.DateRange) ([]domain.SalesAggregateRecord, error)
	Mode() string
}

// New escolhe a estratégia de aquisição conforme a configuração
func New(cfg *config.Config, client salesclient.Client) (SalesRecordSource, error) {
	switch cfg.SalesSource.Mode {
	case config.SalesSourceModeStatic:
		return NewStaticSource(cfg.SalesSource.StaticLocation, client), nil
	case config.SalesSourceModeQuery:
		return NewQuerySource(client), nil
	default:
		return nil, errors.Errorf("salessource: modo desconhecido %q", cfg.SalesSource.Mode)
	}
}

// StaticSource lê sempre o mesmo documento completo, ignorando o intervalo.
// O recorte por data fica a cargo do filtro.
type StaticSource struct {
	location string
	client   salesclient.Client
}

func NewStaticSource(location string, client salesclient.Client) *StaticSource {
	return &StaticSource{
		location: location,
		client:   client,
	}
}

func (s *StaticSource) Mode() string {
	return config.SalesSourceModeStatic
}

func (s *StaticSource) Fetch(ctx context.Context, _ domain.DateRange) ([]domain.SalesAggregateRecord, error) {
	startTime := time.Now()

	data, err := s.read(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"location": s.location,
			"error":    err.Error(),
		}).Error("Erro ao ler documento estático de vendas")
		return nil, domain.NewFetchError(domain.ErrSourceUnavailable, err)
	}

	var records []domain.SalesAggregateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.WithFields(logrus.Fields{
			"location": s.location,
			"error":    err.Error(),
		}).Error("Documento estático de vendas malformado")
		return nil, domain.NewFetchError(domain.ErrSourceUnavailable, errors.Wrap(err, "erro ao decodificar o documento"))
	}

	logrus.WithFields(logrus.Fields{
		"location": s.location,
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Debug("Documento estático de vendas carregado")

	return records, nil
}

func (s *StaticSource) read(ctx context.Context) ([]byte, error) {
	if isRemote(s.location) {
		if s.client == nil {
			return nil, errors.New("cliente HTTP não configurado")
		}
		data, err := s.client.GetDocument(ctx, s.location)
		return data, errors.Wrap(err, "erro ao baixar o documento")
	}

	data, err := os.ReadFile(s.location)
	return data, errors.Wrap(err, "erro ao ler o arquivo")
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// QuerySource consulta o endpoint remoto com as duas datas do intervalo
type QuerySource struct {
	client salesclient.Client
}

func NewQuerySource(client salesclient.Client) *QuerySource {
	return &QuerySource{
		client: client,
	}
}

func (s *QuerySource) Mode() string {
	return config.SalesSourceModeQuery
}

func (s *QuerySource) Fetch(ctx context.Context, r domain.DateRange) ([]domain.SalesAggregateRecord, error) {
	// Sem as duas datas nenhuma requisição é feita
	if !r.IsComplete() {
		return nil, domain.NewFetchError(domain.ErrMissingRange, nil)
	}

	params := salesclient.DailyAggregatesParams{
		From: r.From.Format(time.DateOnly),
		To:   r.To.Format(time.DateOnly),
	}

	resp, err := s.client.GetDailyAggregates(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"from":  params.From,
			"to":    params.To,
			"error": err.Error(),
		}).Error("Erro ao consultar agregados de vendas")
		return nil, domain.NewFetchError(domain.ErrNetworkOrServer, errors.WithMessage(err, "consulta de agregados"))
	}

	logrus.WithFields(logrus.Fields{
		"from":    params.From,
		"to":      params.To,
		"records": len(resp),
	}).Debug("Agregados de vendas consultados")

	return resp, nil
}
