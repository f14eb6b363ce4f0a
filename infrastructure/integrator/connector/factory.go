package connector

import (
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/googlesheets"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/mock"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

const MockAdsPlatform = "Meta Ads (Mock)"

type factory struct {
	sheets     googlesheets.ValuesReader
	metaClient metaclient.Client
	ranges     googlesheets.Ranges
}

// NewFactory recebe os clientes já construídos; sheets nil faz a planilha degradar para dados vazios
func NewFactory(sheets googlesheets.ValuesReader, metaClient metaclient.Client, ranges googlesheets.Ranges) Factory {
	return &factory{
		sheets:     sheets,
		metaClient: metaClient,
		ranges:     ranges,
	}
}

// Build usa a planilha quando a organização tem uma configurada e o Meta quando há token e conta.
// O dry-run efetivo é o pedido OU o da integração.
func (f *factory) Build(cfg domain.OptimizationConfig, dryRun bool) Sources {
	logger := logrus.WithField("organization_id", cfg.OrganizationID)

	var sources Sources

	if cfg.SalesSourceType == domain.SalesSourceGoogleSheets && cfg.GoogleSheets.SpreadsheetID != "" {
		sources.Performance = googlesheets.NewPerformanceSource(f.sheets, cfg.GoogleSheets.SpreadsheetID, f.ranges)
	} else {
		sources.Performance = mock.NewSalesSource()
	}

	platform := cfg.MetaPlatform()
	effectiveDryRun := dryRun || platform.DryRun

	if platform.Ready() && f.metaClient != nil {
		sources.Campaigns = meta.NewCampaignSource(f.metaClient, platform, effectiveDryRun)
	} else {
		if platform.Enabled {
			logger.Warn("Integração com o Meta habilitada sem token ou conta, usando campanhas simuladas")
		}
		sources.Campaigns = mock.NewAdSource(MockAdsPlatform, effectiveDryRun)
	}

	logger.WithFields(logrus.Fields{
		"platform": sources.Campaigns.Platform(),
		"dry_run":  effectiveDryRun,
	}).Debug("Conectores selecionados")

	return sources
}
