package optimizing

import (
	"context"
	"sync"
	"time"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	"github.com/lrlucasdurand-code/unify/infrastructure/repository"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// ConfigLoader monta a configuração efetiva de otimização de uma organização
type ConfigLoader interface {
	LoadOptimizationConfig(ctx context.Context, organizationID int) (*domain.OptimizationConfig, error)
}

type Optimizer interface {
	GetCampaigns(ctx context.Context, organizationID int) ([]domain.Recommendation, error)
	Optimize(ctx context.Context, organizationID int, dryRun bool) (*domain.OptimizationResult, error)
	GlobalStatus(ctx context.Context, organizationID int) (*domain.GlobalStatus, error)
	ListBudgetChanges(ctx context.Context, organizationID int, since *time.Time, limit int) ([]*domain.BudgetChange, error)
}

type Service struct {
	configs     ConfigLoader
	factory     connector.Factory
	changesRepo repository.BudgetChangeRepository
	running     sync.Map
}

func NewService(configs ConfigLoader, factory connector.Factory, changesRepo repository.BudgetChangeRepository) Optimizer {
	return &Service{
		configs:     configs,
		factory:     factory,
		changesRepo: changesRepo,
	}
}

// prepare carrega a configuração, valida as regras e escolhe os conectores
func (s *Service) prepare(ctx context.Context, organizationID int, dryRun bool) (*domain.OptimizationConfig, *Engine, connector.Sources, error) {
	cfg, err := s.configs.LoadOptimizationConfig(ctx, organizationID)
	if err != nil {
		return nil, nil, connector.Sources{}, err
	}

	if err := cfg.BudgetRules.Validate(); err != nil {
		return nil, nil, connector.Sources{}, NewOptimizationError(err, apiErrors.ErrInvalidBudgetRules, organizationID, "")
	}

	return cfg, NewEngine(cfg.BudgetRules), s.factory.Build(*cfg, dryRun), nil
}

// GetCampaigns devolve as recomendações sem alterar nenhum orçamento
func (s *Service) GetCampaigns(ctx context.Context, organizationID int) ([]domain.Recommendation, error) {
	_, engine, sources, err := s.prepare(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	snapshot := Collect(ctx, sources)
	return Reconcile(snapshot.Performance, snapshot.Campaigns, engine), nil
}

// Optimize recalcula as recomendações e aplica INCREASE/DECREASE na plataforma.
// Uma organização só tem uma rodada por vez.
func (s *Service) Optimize(ctx context.Context, organizationID int, dryRun bool) (*domain.OptimizationResult, error) {
	if _, busy := s.running.LoadOrStore(organizationID, struct{}{}); busy {
		return nil, NewOptimizationError(ErrOptimizationBusy, apiErrors.ErrOptimizationBusy, organizationID, "")
	}
	defer s.running.Delete(organizationID)

	cfg, engine, sources, err := s.prepare(ctx, organizationID, dryRun)
	if err != nil {
		return nil, err
	}

	effectiveDryRun := dryRun || cfg.MetaPlatform().DryRun
	logger := logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"dry_run":         effectiveDryRun,
		"platform":        sources.Campaigns.Platform(),
	})

	snapshot := Collect(ctx, sources)
	recommendations := Reconcile(snapshot.Performance, snapshot.Campaigns, engine)
	changes := ApplyRecommendations(ctx, sources.Campaigns, organizationID, recommendations, effectiveDryRun)

	for i := range changes {
		if err := s.changesRepo.Save(ctx, &changes[i]); err != nil {
			logger.WithError(err).WithField("campaign_id", changes[i].CampaignID).Error("Erro ao registrar alteração de orçamento")
		}
	}

	logger.Infof("Otimização concluída: %d recomendações, %d alterações", len(recommendations), len(changes))

	return &domain.OptimizationResult{
		DryRun:          effectiveDryRun,
		Recommendations: recommendations,
		Changes:         changes,
	}, nil
}

func (s *Service) GlobalStatus(ctx context.Context, organizationID int) (*domain.GlobalStatus, error) {
	cfg, _, sources, err := s.prepare(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	status := Status(Collect(ctx, sources), cfg.BudgetRules.CostPerLead)
	return &status, nil
}

func (s *Service) ListBudgetChanges(ctx context.Context, organizationID int, since *time.Time, limit int) ([]*domain.BudgetChange, error) {
	changes, err := s.changesRepo.ListByOrganization(ctx, organizationID, since, limit)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", organizationID).Error("Erro ao listar alterações de orçamento")
		return nil, NewOptimizationError(ErrHistoryUnavailable, apiErrors.ErrDatabaseOperation, organizationID, err.Error())
	}

	return changes, nil
}
