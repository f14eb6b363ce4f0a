package optimizing

import (
	"context"
	"time"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
	"github.com/sirupsen/logrus"
)

const weeklyWorkingDays = 5

// Snapshot é a leitura das duas fontes numa rodada
type Snapshot struct {
	Performance *domain.PerformancePayload
	Campaigns   map[string]domain.CampaignRecord
}

// Collect lê desempenho e campanhas em sequência. Falhas das fontes viram payloads vazios.
func Collect(ctx context.Context, sources connector.Sources) Snapshot {
	snapshot := Snapshot{
		Performance: domain.EmptyPerformancePayload(),
		Campaigns:   map[string]domain.CampaignRecord{},
	}

	if sources.Performance != nil {
		payload, err := sources.Performance.GetPerformanceData(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao ler desempenho de vendas, seguindo sem dados")
		} else if payload != nil {
			if payload.Campaigns == nil {
				payload.Campaigns = map[string]domain.PerformanceRecord{}
			}
			snapshot.Performance = payload
		}
	}

	if sources.Campaigns != nil {
		campaigns, err := sources.Campaigns.GetCampaigns(ctx)
		if err != nil {
			logrus.WithError(err).WithField("platform", sources.Campaigns.Platform()).
				Warn("Erro ao ler campanhas, seguindo sem dados")
		} else if campaigns != nil {
			snapshot.Campaigns = campaigns
		}
	}

	return snapshot
}

// Status compara a demanda implícita dos orçamentos atuais com os limites da planilha
func Status(snapshot Snapshot, costPerLead float64) domain.GlobalStatus {
	current := ImpliedDailyDemand(snapshot.Campaigns, costPerLead)

	var dailyCap, weeklyCap *float64
	if snapshot.Performance != nil {
		dailyCap = snapshot.Performance.GlobalCap
		weeklyCap = snapshot.Performance.GlobalCapWeekly
	}

	return domain.GlobalStatus{
		Daily: domain.CapacityGauge{
			Cap:     dailyCap,
			Current: current,
			Unit:    "Leads/Day",
		},
		Weekly: domain.CapacityGauge{
			Cap:     weeklyCap,
			Current: current * weeklyWorkingDays,
			Unit:    "Leads/Week",
		},
	}
}

// ApplyRecommendations envia os novos orçamentos para a plataforma, uma campanha por vez.
// Só INCREASE/DECREASE de campanhas casadas e com orçamento positivo são aplicados.
// Uma falha marca a alteração como success=false e não interrompe as demais.
func ApplyRecommendations(
	ctx context.Context,
	source connector.CampaignSource,
	organizationID int,
	recommendations []domain.Recommendation,
	dryRun bool,
) []domain.BudgetChange {
	changes := []domain.BudgetChange{}

	for _, rec := range recommendations {
		decision := rec.BudgetRecommendation
		if decision.Action == domain.ActionMaintain || rec.CampaignID == "" || rec.CurrentBudget <= 0 {
			continue
		}

		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).WithField("organization_id", organizationID).
				Warn("Aplicação de orçamentos interrompida")
			break
		}

		change := domain.BudgetChange{
			OrganizationID: organizationID,
			CampaignID:     rec.CampaignID,
			PlatformID:     decision.PlatformID,
			Platform:       source.Platform(),
			PreviousBudget: rec.CurrentBudget,
			NewBudget:      utils.ScaleBudget(rec.CurrentBudget, decision.Multiplier),
			Multiplier:     decision.Multiplier,
			Action:         decision.Action,
			DryRun:         dryRun,
			CreatedAt:      time.Now(),
		}

		if id, err := utils.GenerateID(); err == nil {
			change.ID = id
		}

		fields := logrus.Fields{
			"organization_id": organizationID,
			"campaign_id":     change.CampaignID,
			"platform":        change.Platform,
			"dry_run":         dryRun,
		}

		if err := source.UpdateBudget(ctx, rec.CampaignID, change.NewBudget); err != nil {
			msg := err.Error()
			change.ErrorMessage = &msg
			logrus.WithError(err).WithFields(fields).Error("Falha ao atualizar orçamento")
		} else {
			change.Success = true
			logrus.WithFields(fields).Infof("Orçamento %.2f -> %.2f (%s)", change.PreviousBudget, change.NewBudget, change.Action)
		}

		changes = append(changes, change)
	}

	return changes
}
