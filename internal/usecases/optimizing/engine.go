package optimizing

import (
	"fmt"
	"strings"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
)

const (
	maintainUpperBound = 1.02
	maintainLowerBound = 0.98
	minMultiplier      = 0.01
)

// Engine calcula o ajuste de orçamento a partir do desempenho e do fator global
type Engine struct {
	rules domain.BudgetRules
}

func NewEngine(rules domain.BudgetRules) *Engine {
	return &Engine{rules: rules}
}

func (e *Engine) Rules() domain.BudgetRules {
	return e.rules
}

// CalculateAdjustment aplica as regras de desempenho e o fator de capacidade global.
// A ação é decidida sobre o multiplicador final antes do arredondamento.
func (e *Engine) CalculateAdjustment(perf domain.PerformanceRecord, globalScaling float64) domain.Decision {
	perfMultiplier := 1.0
	var reasons []string

	if perf.Objective > 0 {
		ratio := perf.Actual / perf.Objective

		switch {
		case ratio >= e.rules.IncreaseThreshold:
			perfMultiplier = 1 + e.rules.IncreasePercentage
			reasons = append(reasons, fmt.Sprintf("High Performance (CVR %s)", formatPercent(ratio)))
		case ratio <= e.rules.DecreaseThreshold:
			perfMultiplier = 1 - e.rules.DecreasePercentage
			reasons = append(reasons, fmt.Sprintf("Low Performance (CVR %s)", formatPercent(ratio)))
		default:
			reasons = append(reasons, "Stable Performance")
		}
	}

	finalMultiplier := perfMultiplier * globalScaling

	if globalScaling < 1 {
		reasons = append(reasons, fmt.Sprintf("Global Cap Limit (%s)", formatPercent(globalScaling)))
	}

	action := domain.ActionMaintain
	switch {
	case finalMultiplier > maintainUpperBound:
		action = domain.ActionIncrease
	case finalMultiplier < maintainLowerBound:
		action = domain.ActionDecrease
	}

	multiplier := utils.RoundWithTwoDecimalPlace(finalMultiplier)
	if multiplier < minMultiplier {
		multiplier = minMultiplier
	}

	return domain.Decision{
		Action:     action,
		Multiplier: multiplier,
		Reason:     strings.Join(reasons, " + "),
	}
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
