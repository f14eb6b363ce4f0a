package administering

import (
	"context"

	"github.com/lrlucasdurand-code/unify/infrastructure/repository"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Administrator interface {
	Stats(ctx context.Context) (*domain.PlatformStats, error)
	Organizations(ctx context.Context) ([]*domain.OrganizationSummary, error)
}

type Service struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

func NewService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) Administrator {
	return &Service{
		orgRepo:  orgRepo,
		userRepo: userRepo,
	}
}

// Stats calcula o MRR pelo preço de tabela de cada plano ativo
func (s *Service) Stats(ctx context.Context) (*domain.PlatformStats, error) {
	byPlan, err := s.orgRepo.CountByPlan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar organizações por plano")
	}

	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar usuários ativos")
	}

	var (
		total int
		mrr   = decimal.Zero
	)
	for plan, count := range byPlan {
		total += count
		price := decimal.NewFromFloat(domain.PlanMonthlyPrice[plan])
		mrr = mrr.Add(price.Mul(decimal.NewFromInt(int64(count))))
	}

	return &domain.PlatformStats{
		TotalOrganizations: total,
		ActiveUsers:        activeUsers,
		MRR:                mrr.InexactFloat64(),
	}, nil
}

func (s *Service) Organizations(ctx context.Context) ([]*domain.OrganizationSummary, error) {
	summaries, err := s.orgRepo.ListSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar organizações")
	}

	if summaries == nil {
		summaries = []*domain.OrganizationSummary{}
	}

	return summaries, nil
}
