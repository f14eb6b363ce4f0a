package connector

import (
	"context"

	"github.com/lrlucasdurand-code/unify/internal/domain"
)

//go:generate mockgen -source=connector.go -destination=mocks/connector.go -package=mocks

// PerformanceSource fornece o desempenho de vendas (real vs objetivo) por campanha/equipe
type PerformanceSource interface {
	GetPerformanceData(ctx context.Context) (*domain.PerformancePayload, error)
}

// CampaignSource fornece as campanhas de uma plataforma de anúncios e aplica novos orçamentos.
// Em dry-run UpdateBudget não altera nada e retorna nil.
type CampaignSource interface {
	Platform() string
	GetCampaigns(ctx context.Context) (map[string]domain.CampaignRecord, error)
	UpdateBudget(ctx context.Context, campaignID string, newBudget float64) error
}

// Sources é o par de conectores de uma organização
type Sources struct {
	Performance PerformanceSource
	Campaigns   CampaignSource
}

// Factory escolhe as variantes de cada fonte a partir da configuração da organização
type Factory interface {
	Build(cfg domain.OptimizationConfig, dryRun bool) Sources
}
