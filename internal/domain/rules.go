package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidBudgetRules = errors.New("regras de orçamento inválidas")

const DefaultCostPerLead = 20.0

// BudgetRules parametriza o motor de decisão
type BudgetRules struct {
	IncreaseThreshold  float64 `json:"increase_threshold" yaml:"increase_threshold" mapstructure:"increase_threshold"`
	DecreaseThreshold  float64 `json:"decrease_threshold" yaml:"decrease_threshold" mapstructure:"decrease_threshold"`
	IncreasePercentage float64 `json:"increase_percentage" yaml:"increase_percentage" mapstructure:"increase_percentage"`
	DecreasePercentage float64 `json:"decrease_percentage" yaml:"decrease_percentage" mapstructure:"decrease_percentage"`
	CostPerLead        float64 `json:"cost_per_lead" yaml:"cost_per_lead" mapstructure:"cost_per_lead"`
}

func DefaultBudgetRules() BudgetRules {
	return BudgetRules{
		IncreaseThreshold:  1.10,
		DecreaseThreshold:  0.90,
		IncreasePercentage: 0.10,
		DecreasePercentage: 0.10,
		CostPerLead:        DefaultCostPerLead,
	}
}

// Validate garante thresholds positivos e ordenados, aumento >= 0 e redução em [0, 1)
func (r BudgetRules) Validate() error {
	if r.IncreaseThreshold <= 0 || r.DecreaseThreshold <= 0 {
		return fmt.Errorf("%w: thresholds devem ser positivos", ErrInvalidBudgetRules)
	}

	if r.DecreaseThreshold > r.IncreaseThreshold {
		return fmt.Errorf("%w: decrease_threshold (%.2f) maior que increase_threshold (%.2f)",
			ErrInvalidBudgetRules, r.DecreaseThreshold, r.IncreaseThreshold)
	}

	if r.IncreasePercentage < 0 {
		return fmt.Errorf("%w: increase_percentage negativo", ErrInvalidBudgetRules)
	}

	// redução de 100% zeraria o multiplicador
	if r.DecreasePercentage < 0 || r.DecreasePercentage >= 1 {
		return fmt.Errorf("%w: decrease_percentage fora do intervalo [0, 1)", ErrInvalidBudgetRules)
	}

	if r.CostPerLead < 0 {
		return fmt.Errorf("%w: cost_per_lead negativo", ErrInvalidBudgetRules)
	}

	return nil
}

// BudgetRulesPatch é a atualização parcial das regras; campos ausentes mantêm o valor atual
type BudgetRulesPatch struct {
	IncreaseThreshold  *float64 `json:"increase_threshold"`
	DecreaseThreshold  *float64 `json:"decrease_threshold"`
	IncreasePercentage *float64 `json:"increase_percentage"`
	DecreasePercentage *float64 `json:"decrease_percentage"`
	CostPerLead        *float64 `json:"cost_per_lead"`
}

func (p BudgetRulesPatch) Apply(base BudgetRules) BudgetRules {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	set(&base.IncreaseThreshold, p.IncreaseThreshold)
	set(&base.DecreaseThreshold, p.DecreaseThreshold)
	set(&base.IncreasePercentage, p.IncreasePercentage)
	set(&base.DecreasePercentage, p.DecreasePercentage)
	set(&base.CostPerLead, p.CostPerLead)

	return base
}
