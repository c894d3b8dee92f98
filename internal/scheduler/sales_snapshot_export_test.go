package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salessource"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newExportService(t *testing.T, repo *mocks.MockSalesAggregateRepository, path string) *SalesSnapshotExportService {
	t.Helper()
	return NewSalesSnapshotExportService(repo, &config.Config{
		SalesSnapshotExport: config.SalesSnapshotExport{
			CronSchedule: "0 2 * * *",
			Path:         path,
			Enabled:      true,
		},
	})
}

func TestSalesSnapshotExportService_exportSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockSalesAggregateRepository)
		validate func(t *testing.T, s *SalesSnapshotExportService, path string)
	}{
		{
			name: "Documento exportado é legível pela origem estática",
			setup: func(repo *mocks.MockSalesAggregateRepository) {
				repo.EXPECT().
					ListDailyAggregates(gomock.Any()).
					Return([]domain.SalesAggregateRecord{
						{DateKey: "2024-01-01", TotalQuantity: 5, TotalSales: 100},
						{DateKey: "2024-01-02", TotalQuantity: 0, TotalSales: 0},
					}, nil)
			},
			validate: func(t *testing.T, s *SalesSnapshotExportService, path string) {
				records, err := salessource.NewStaticSource(path, nil).Fetch(context.Background(), domain.DateRange{})
				require.NoError(t, err)
				assert.Equal(t, []domain.SalesAggregateRecord{
					{DateKey: "2024-01-01", TotalQuantity: 5, TotalSales: 100},
					{DateKey: "2024-01-02", TotalQuantity: 0, TotalSales: 0},
				}, records)

				status := s.GetStatus()
				assert.Equal(t, 2, status["last_exported_records"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])

				// Nenhum arquivo temporário sobra no diretório
				entries, err := os.ReadDir(filepath.Dir(path))
				require.NoError(t, err)
				assert.Len(t, entries, 1)
			},
		},
		{
			name: "Sem vendas exporta lista vazia",
			setup: func(repo *mocks.MockSalesAggregateRepository) {
				repo.EXPECT().ListDailyAggregates(gomock.Any()).Return([]domain.SalesAggregateRecord{}, nil)
			},
			validate: func(t *testing.T, s *SalesSnapshotExportService, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Equal(t, "[]", string(data))
			},
		},
		{
			name: "Erro do banco não cria o documento",
			setup: func(repo *mocks.MockSalesAggregateRepository) {
				repo.EXPECT().ListDailyAggregates(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, s *SalesSnapshotExportService, path string) {
				_, err := os.Stat(path)
				assert.True(t, os.IsNotExist(err))
				assert.Contains(t, s.GetStatus()["last_error"], "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSalesAggregateRepository(ctrl)
			path := filepath.Join(t.TempDir(), "salesData.json")
			service := newExportService(t, repo, path)

			tt.setup(repo)
			service.exportSnapshot(context.Background())
			tt.validate(t, service, path)
		})
	}
}

func TestSalesSnapshotExportService_SkipsOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesAggregateRepository(ctrl) // nenhuma chamada esperada

	service := newExportService(t, repo, filepath.Join(t.TempDir(), "salesData.json"))
	service.syncRunning = true

	service.exportSnapshot(context.Background())
	service.TriggerManualSync()
}

func TestSalesSnapshotExportService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesAggregateRepository(ctrl)

	service := NewSalesSnapshotExportService(repo, &config.Config{})
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
