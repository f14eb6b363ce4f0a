package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

// AdSource simula uma plataforma de anúncios em memória
type AdSource struct {
	platform  string
	dryRun    bool
	mu        sync.RWMutex
	campaigns map[string]domain.CampaignRecord
}

func NewAdSource(platform string, dryRun bool) *AdSource {
	return &AdSource{
		platform: platform,
		dryRun:   dryRun,
		campaigns: map[string]domain.CampaignRecord{
			"campaign_1": {ID: "campaign_1", Name: "Alpha Launch", DailyBudget: 100, Status: domain.CampaignStatusActive},
			"campaign_2": {ID: "campaign_2", Name: "Beta Test", DailyBudget: 200, Status: domain.CampaignStatusActive},
			"campaign_3": {ID: "campaign_3", Name: "Charlie Promo", DailyBudget: 150, Status: domain.CampaignStatusActive},
		},
	}
}

func (a *AdSource) Platform() string {
	return a.platform
}

func (a *AdSource) GetCampaigns(ctx context.Context) (map[string]domain.CampaignRecord, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]domain.CampaignRecord, len(a.campaigns))
	for id, c := range a.campaigns {
		out[id] = c
	}

	return out, nil
}

func (a *AdSource) UpdateBudget(ctx context.Context, campaignID string, newBudget float64) error {
	fields := logrus.Fields{
		"platform":    a.platform,
		"campaign_id": campaignID,
		"new_budget":  newBudget,
		"dry_run":     a.dryRun,
	}

	if a.dryRun {
		logrus.WithFields(fields).Info("[DRY RUN] Orçamento não alterado")
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	campaign, ok := a.campaigns[campaignID]
	if !ok {
		return fmt.Errorf("campanha %s não encontrada em %s", campaignID, a.platform)
	}

	campaign.DailyBudget = newBudget
	a.campaigns[campaignID] = campaign

	logrus.WithFields(fields).Info("Orçamento atualizado")
	return nil
}
