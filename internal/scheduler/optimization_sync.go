package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/lrlucasdurand-code/unify/pkg/log"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// OrganizationLister devolve as organizações com otimização automática ligada
type OrganizationLister interface {
	ListAutoScalingOrganizations(ctx context.Context) ([]int, error)
}

// OptimizationSyncConfig representa a configuração do agendador de otimização
type OptimizationSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	DryRun            bool
}

// OptimizationSyncService roda a otimização de todas as organizações no horário do cron
type OptimizationSyncService struct {
	scheduler *gocron.Scheduler
	config    OptimizationSyncConfig
	orgs      OrganizationLister
	optimizer optimizing.Optimizer
	ctx       context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastOrganizations   int
	lastFailures        int
}

func NewOptimizationSyncService(orgs OrganizationLister, optimizer optimizing.Optimizer, appConfig *config.Config) *OptimizationSyncService {
	syncConfig := OptimizationSyncConfig{
		CronSchedule:      appConfig.OptimizationSync.CronSchedule,
		MaxConcurrentJobs: appConfig.OptimizationSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.OptimizationSync.Enabled,
		DryRun:            appConfig.Optimizer.DryRun,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"dry_run":             syncConfig.DryRun,
	}).Info("Configuração do agendador de otimização carregada")

	return &OptimizationSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		orgs:      orgs,
		optimizer: optimizer,
		ctx:       context.Background(),
	}
}

// Start agenda a otimização e para o agendador quando o contexto é cancelado
func (s *OptimizationSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Otimização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de otimização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllOrganizations(s.runContext())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar otimização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllOrganizations otimiza as organizações em paralelo, limitado por MaxConcurrentJobs.
// Falha em uma organização não interrompe as demais.
func (s *OptimizationSyncService) syncAllOrganizations(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Otimização agendada já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	// cada rodada tem seu correlation_id, como uma requisição HTTP
	ctx, _ = log.WithCorrelationID(ctx)
	runLogger := log.ForContext(ctx)

	var (
		failures  int
		processed int
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastOrganizations = processed
		s.lastFailures = failures
		s.syncMutex.Unlock()
	}()

	orgIDs, err := s.orgs.ListAutoScalingOrganizations(ctx)
	if err != nil {
		runLogger.WithError(err).Error("Erro ao buscar organizações para otimização agendada")
		return
	}

	if len(orgIDs) == 0 {
		runLogger.Info("Nenhuma organização com otimização automática")
		return
	}

	var failuresMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.MaxConcurrentJobs)

	for _, orgID := range orgIDs {
		orgID := orgID
		group.Go(func() error {
			if err := s.optimizeOrganization(groupCtx, orgID); err != nil {
				failuresMutex.Lock()
				failures++
				failuresMutex.Unlock()
			}
			return nil
		})
	}

	_ = group.Wait()
	processed = len(orgIDs)

	runLogger.WithFields(log.Fields{
		"duration":      time.Since(startTime).String(),
		"organizations": processed,
		"failures":      failures,
	}).Info("Otimização agendada concluída")
}

func (s *OptimizationSyncService) optimizeOrganization(ctx context.Context, orgID int) error {
	logger := log.ForContext(ctx).WithField("organization_id", orgID)

	result, err := s.optimizer.Optimize(ctx, orgID, s.config.DryRun)
	if err != nil {
		logger.WithError(err).Error("Erro na otimização agendada")
		return err
	}

	applied := 0
	for _, change := range result.Changes {
		if change.Success {
			applied++
		}
	}

	logger.WithFields(log.Fields{
		"recommendations": len(result.Recommendations),
		"changes":         len(result.Changes),
		"applied":         applied,
		"dry_run":         result.DryRun,
	}).Info("Organização otimizada")

	return nil
}

// TriggerManualSync dispara uma rodada fora do horário; devolve false se já houver uma em andamento
func (s *OptimizationSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Otimização agendada já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.ctx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando otimização manual de todas as organizações")
	go s.syncAllOrganizations(ctx)

	return true
}

func (s *OptimizationSyncService) runContext() context.Context {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.ctx
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"dry_run":                s.config.DryRun,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_organizations":     s.lastOrganizations,
		"last_failures":          s.lastFailures,
	}
}
