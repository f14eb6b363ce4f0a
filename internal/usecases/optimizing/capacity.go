package optimizing

import (
	"math"

	"github.com/lrlucasdurand-code/unify/internal/domain"
)

// ImpliedDailyDemand estima os leads diários que os orçamentos atuais gerariam
func ImpliedDailyDemand(campaigns map[string]domain.CampaignRecord, costPerLead float64) float64 {
	if costPerLead <= 0 {
		costPerLead = domain.DefaultCostPerLead
	}

	var demand float64
	for _, c := range campaigns {
		demand += c.DailyBudget / costPerLead
	}

	return demand
}

// GlobalScalingFactor devolve um fator em (0, 1]: cap/demanda quando a demanda implícita
// excede o limite diário, 1.0 caso contrário. Limite nulo, <= 0 ou não finito significa sem limite.
func GlobalScalingFactor(campaigns map[string]domain.CampaignRecord, dailyCap *float64, costPerLead float64) float64 {
	if dailyCap == nil || !(*dailyCap > 0) || math.IsInf(*dailyCap, 0) {
		return 1
	}

	demand := ImpliedDailyDemand(campaigns, costPerLead)
	if demand <= 0 || demand <= *dailyCap {
		return 1
	}

	return *dailyCap / demand
}
