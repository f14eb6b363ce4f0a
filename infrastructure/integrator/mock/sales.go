package mock

import (
	"context"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

// SalesSource devolve um conjunto fixo de desempenho, sem nomes nem limites globais
type SalesSource struct{}

func NewSalesSource() *SalesSource {
	return &SalesSource{}
}

func (s *SalesSource) GetPerformanceData(ctx context.Context) (*domain.PerformancePayload, error) {
	logrus.Debug("Usando fonte de vendas simulada")

	return &domain.PerformancePayload{
		Campaigns: map[string]domain.PerformanceRecord{
			"campaign_1": {ID: "campaign_1", Actual: 12500, Objective: 10000}, // acima do objetivo
			"campaign_2": {ID: "campaign_2", Actual: 7000, Objective: 10000},  // abaixo do objetivo
			"campaign_3": {ID: "campaign_3", Actual: 10500, Objective: 10000}, // estável
		},
	}, nil
}
