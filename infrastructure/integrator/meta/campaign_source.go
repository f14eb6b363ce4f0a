package meta

import (
	"context"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const PlatformName = "meta"

// CampaignSource liga uma conta de anúncios do Meta ao otimizador.
// Em dry-run as alterações de orçamento são apenas registradas em log.
type CampaignSource struct {
	client      metaclient.Client
	credentials metaclient.Credentials
	accountID   string
	dryRun      bool
}

func NewCampaignSource(client metaclient.Client, cfg domain.AdPlatformConfig, dryRun bool) *CampaignSource {
	return &CampaignSource{
		client: client,
		credentials: metaclient.Credentials{
			AccessToken: cfg.AccessToken,
			AppSecret:   cfg.AppSecret,
		},
		accountID: cfg.AdAccountID,
		dryRun:    dryRun,
	}
}

func (s *CampaignSource) Platform() string {
	return PlatformName
}

func (s *CampaignSource) GetCampaigns(ctx context.Context) (map[string]domain.CampaignRecord, error) {
	logger := logrus.WithFields(logrus.Fields{
		"platform":      PlatformName,
		"ad_account_id": s.accountID,
	})

	campaigns, err := s.client.GetCampaignsByAccountID(ctx, s.credentials, s.accountID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar campanhas do Meta")
		return nil, errors.Wrap(err, "meta: falha ao listar campanhas")
	}

	records := make(map[string]domain.CampaignRecord, len(campaigns))
	for _, c := range campaigns {
		records[c.ID] = c.ToRecord()
	}

	logger.Debugf("%d campanhas ativas encontradas", len(records))

	return records, nil
}

func (s *CampaignSource) UpdateBudget(ctx context.Context, campaignID string, newBudget float64) error {
	cents := utils.ToCents(newBudget)

	logger := logrus.WithFields(logrus.Fields{
		"platform":    PlatformName,
		"campaign_id": campaignID,
		"dry_run":     s.dryRun,
	})

	if s.dryRun {
		logger.Infof("[DRY RUN] daily_budget seria alterado para %d centavos", cents)
		return nil
	}

	if err := s.client.UpdateCampaignDailyBudget(ctx, s.credentials, campaignID, cents); err != nil {
		return errors.Wrapf(err, "meta: falha ao atualizar campanha %s", campaignID)
	}

	logger.Infof("daily_budget alterado para %.2f", newBudget)
	return nil
}
