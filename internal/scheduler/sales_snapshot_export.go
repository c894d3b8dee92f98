package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SalesSnapshotExportConfig representa a configuração do agendador de exportação
type SalesSnapshotExportConfig struct {
	CronSchedule string
	Path         string
	SyncEnabled  bool
}

// SalesSnapshotExportService gera periodicamente o documento estático de agregados
// diários lido pelo dashboard no modo "static"
type SalesSnapshotExportService struct {
	scheduler           *gocron.Scheduler
	config              SalesSnapshotExportConfig
	salesRepo           repository.SalesAggregateRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastExportedRecords int
	lastError           string
}

// NewSalesSnapshotExportService cria uma nova instância do serviço de exportação
func NewSalesSnapshotExportService(
	salesRepo repository.SalesAggregateRepository,
	appConfig *config.Config,
) *SalesSnapshotExportService {
	exportConfig := SalesSnapshotExportConfig{
		CronSchedule: appConfig.SalesSnapshotExport.CronSchedule,
		Path:         appConfig.SalesSnapshotExport.Path,
		SyncEnabled:  appConfig.SalesSnapshotExport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"path":          exportConfig.Path,
		"sync_enabled":  exportConfig.SyncEnabled,
	}).Info("Configuração do agendador de exportação de vendas carregada")

	return &SalesSnapshotExportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    exportConfig,
		salesRepo: salesRepo,
	}
}

// Start inicia o agendador
func (s *SalesSnapshotExportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Exportação do documento de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.exportSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// exportSnapshot grava todos os agregados diários no documento estático
func (s *SalesSnapshotExportService) exportSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	count, err := s.export(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastExportedRecords = count
		s.lastSyncCompletedAt = time.Now()
	}
	startedAt := s.lastSyncStartedAt
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  s.config.Path,
			"error": err.Error(),
		}).Error("Erro ao exportar documento de vendas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":     s.config.Path,
		"records":  count,
		"duration": time.Since(startedAt).String(),
	}).Info("Documento de vendas exportado com sucesso")
}

func (s *SalesSnapshotExportService) export(ctx context.Context) (int, error) {
	records, err := s.salesRepo.ListDailyAggregates(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar agregados diários: %w", err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar agregados: %w", err)
	}

	if err := writeFileAtomic(s.config.Path, data); err != nil {
		return 0, err
	}

	return len(records), nil
}

// writeFileAtomic grava em um arquivo temporário no mesmo diretório e renomeia,
// para que leitores nunca vejam um documento pela metade
func writeFileAtomic(path string, data []byte) error {
	suffix, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar nome temporário: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), suffix))

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("erro ao substituir documento de vendas: %w", err)
	}

	return nil
}

// TriggerManualSync inicia manualmente uma exportação
func (s *SalesSnapshotExportService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando exportação manual do documento de vendas")
	go s.exportSnapshot(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SalesSnapshotExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"snapshot_path":          s.config.Path,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_exported_records":  s.lastExportedRecords,
		"last_error":             s.lastError,
	}
}
