package optimizing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lrlucasdurand-code/unify/internal/domain"
)

const defaultMetricName = "Currency"

// Reconcile cruza desempenho e campanhas e gera uma recomendação por registro de desempenho,
// ordenada por id. Casamento: nome normalizado, depois id, senão placeholder NOT_FOUND.
// Nunca altera orçamentos.
func Reconcile(
	performance *domain.PerformancePayload,
	campaigns map[string]domain.CampaignRecord,
	engine *Engine,
) []domain.Recommendation {
	if performance == nil {
		performance = domain.EmptyPerformancePayload()
	}

	scaling := GlobalScalingFactor(campaigns, performance.GlobalCap, engine.Rules().CostPerLead)
	byName := indexByName(campaigns)

	ids := make([]string, 0, len(performance.Campaigns))
	for id := range performance.Campaigns {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	recommendations := make([]domain.Recommendation, 0, len(ids))
	for _, id := range ids {
		perf := performance.Campaigns[id]
		campaign, matched := matchCampaign(id, perf, campaigns, byName)

		decision := engine.CalculateAdjustment(perf, scaling)
		if campaign.PlatformID != nil && *campaign.PlatformID != "" {
			decision.PlatformID = campaign.PlatformID
		}

		status := campaign.Status
		if status == "" {
			status = domain.CampaignStatusActive
		}

		metricName := perf.MetricName
		if metricName == "" {
			metricName = defaultMetricName
		}

		rec := domain.Recommendation{
			ID:     id,
			Name:   campaign.Name,
			Status: status,
			Metrics: domain.Metrics{
				Actual:    perf.Actual,
				Objective: perf.Objective,
				Name:      metricName,
			},
			BudgetRecommendation: decision,
			CurrentBudget:        campaign.DailyBudget,
		}
		if matched {
			rec.CampaignID = campaign.ID
		}

		recommendations = append(recommendations, rec)
	}

	return recommendations
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// indexByName indexa campanhas pelo nome normalizado; nomes repetidos ficam com o maior id
func indexByName(campaigns map[string]domain.CampaignRecord) map[string]domain.CampaignRecord {
	ids := make([]string, 0, len(campaigns))
	for id := range campaigns {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byName := make(map[string]domain.CampaignRecord, len(campaigns))
	for _, id := range ids {
		c := campaigns[id]
		if c.ID == "" {
			c.ID = id
		}

		name := normalizeName(c.Name)
		if name == "" {
			continue
		}
		byName[name] = c
	}

	return byName
}

func matchCampaign(
	id string,
	perf domain.PerformanceRecord,
	campaigns map[string]domain.CampaignRecord,
	byName map[string]domain.CampaignRecord,
) (domain.CampaignRecord, bool) {
	if c, ok := byName[normalizeName(perf.Name)]; ok {
		return c, true
	}

	if c, ok := campaigns[id]; ok {
		if c.ID == "" {
			c.ID = id
		}
		return c, true
	}

	name := strings.TrimSpace(perf.Name)
	if name == "" {
		name = fmt.Sprintf("Campaign %s", id)
	}

	return domain.CampaignRecord{
		Name:        name,
		DailyBudget: 0,
		Status:      domain.CampaignStatusNotFound,
	}, false
}
