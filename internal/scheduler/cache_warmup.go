package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// CacheWarmupConfig representa a configuração do agendador de aquecimento de cache
type CacheWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmupStatus é o estado exposto pelo endpoint de status dos jobs
type CacheWarmupStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastRunID       string     `json:"last_run_id,omitempty"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// CacheWarmupService reexecuta a consulta ao warehouse em um cron para manter
// o cache de dados aquecido. Desabilitado por padrão: o modelo base do
// dashboard é recarga preguiçosa no acesso.
type CacheWarmupService struct {
	scheduler *gocron.Scheduler
	config    CacheWarmupConfig
	reporter  reporting.Reporter

	mu              sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       error
}

// NewCacheWarmupService cria uma nova instância do serviço de aquecimento de cache
func NewCacheWarmupService(reporter reporting.Reporter, appConfig *config.Config) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: appConfig.CacheWarmup.CronSchedule,
		Enabled:      appConfig.CacheWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do agendador de aquecimento de cache carregada")

	return &CacheWarmupService{
		scheduler: scheduler,
		config:    warmupConfig,
		reporter:  reporter,
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun executa o aquecimento imediatamente, fora do cron
func (s *CacheWarmupService) TriggerManualRun(ctx context.Context) (string, error) {
	return s.warmup(ctx)
}

// Status devolve o estado atual do job
func (s *CacheWarmupService) Status() CacheWarmupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := CacheWarmupStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.running,
		LastRunID:    s.lastRunID,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}

func (s *CacheWarmupService) warmup(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando")
		return "", nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		s.mu.Unlock()
		return "", err
	}

	startedAt := time.Now()
	s.running = true
	s.lastRunID = runID
	s.lastStartedAt = startedAt
	s.mu.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando aquecimento do cache de dados do dashboard")

	warmupErr := s.reporter.Refresh(ctx)

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastError = warmupErr
	s.mu.Unlock()

	if warmupErr != nil {
		logger.WithError(warmupErr).Error("Aquecimento de cache finalizado com erro")
		return runID, warmupErr
	}

	logger.WithField("duration", time.Since(startedAt).String()).Info("Aquecimento de cache finalizado com sucesso")
	return runID, nil
}
