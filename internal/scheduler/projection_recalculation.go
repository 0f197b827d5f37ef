// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// Recalculator reconstrói todas as projeções salvas com os dados atuais
type Recalculator interface {
	RecalculateAll(ctx context.Context) ([]domain.RecalculationSummary, error)
}

type ProjectionRecalculationConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ProjectionRecalculationService agenda o recálculo em lote das projeções
type ProjectionRecalculationService struct {
	scheduler           *gocron.Scheduler
	config              ProjectionRecalculationConfig
	recalculator        Recalculator
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummaries       []domain.RecalculationSummary
	lastError           string
}

func NewProjectionRecalculationService(recalculator Recalculator, cfg *config.Config) *ProjectionRecalculationService {
	recalcConfig := ProjectionRecalculationConfig{
		CronSchedule: cfg.RecalculationSync.CronSchedule, // Default: 4h da manhã todos os dias
		SyncEnabled:  cfg.RecalculationSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": recalcConfig.CronSchedule,
		"sync_enabled":  recalcConfig.SyncEnabled,
	}).Info("Configuração do agendador de recálculo de projeções carregada")

	return &ProjectionRecalculationService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       recalcConfig,
		recalculator: recalculator,
		baseCtx:      context.Background(),
	}
}

// Start inicia o agendador
func (s *ProjectionRecalculationService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Recálculo de projeções desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de projeções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RecalculateProjections(ctx); err != nil {
			logrus.WithError(err).Error("Erro no recálculo agendado de projeções")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de projeções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de projeções")
		s.scheduler.Stop()
	}()

	return nil
}

// RecalculateProjections executa o recálculo; uma execução concorrente é ignorada
func (s *ProjectionRecalculationService) RecalculateProjections(ctx context.Context) ([]domain.RecalculationSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recálculo de projeções já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	logrus.Info("Iniciando recálculo de projeções")

	summaries, err := s.recalculator.RecalculateAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSummaries = summaries
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return summaries, err
	}

	fields := logrus.Fields{"duration": time.Since(startTime).String()}
	for _, summary := range summaries {
		fields[string(summary.Kind)+"_updated"] = summary.Updated
		fields[string(summary.Kind)+"_failed"] = summary.Failed
	}
	logrus.WithFields(fields).Info("Recálculo de projeções concluído")

	return summaries, nil
}

// TriggerManualSync inicia manualmente um recálculo de projeções
func (s *ProjectionRecalculationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de projeções já em andamento, ignorando solicitação manual")
		return
	}
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de projeções")
	go func() {
		if _, err := s.RecalculateProjections(ctx); err != nil {
			logrus.WithError(err).Error("Erro no recálculo manual de projeções")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ProjectionRecalculationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summaries":         s.lastSummaries,
		"last_error":             s.lastError,
	}
}
