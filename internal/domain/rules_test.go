package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetRules_Validate(t *testing.T) {
	withRules := func(change func(r *BudgetRules)) BudgetRules {
		r := DefaultBudgetRules()
		change(&r)
		return r
	}

	tests := []struct {
		name    string
		rules   BudgetRules
		wantErr bool
	}{
		{name: "padrão", rules: DefaultBudgetRules()},
		{name: "aumento de 100%", rules: withRules(func(r *BudgetRules) { r.IncreasePercentage = 1 })},
		{name: "aumento acima de 100%", rules: withRules(func(r *BudgetRules) { r.IncreasePercentage = 1.5 })},
		{name: "aumento negativo", rules: withRules(func(r *BudgetRules) { r.IncreasePercentage = -0.1 }), wantErr: true},
		{name: "redução de 100%", rules: withRules(func(r *BudgetRules) { r.DecreasePercentage = 1 }), wantErr: true},
		{name: "redução negativa", rules: withRules(func(r *BudgetRules) { r.DecreasePercentage = -0.1 }), wantErr: true},
		{name: "thresholds invertidos", rules: withRules(func(r *BudgetRules) { r.DecreaseThreshold = 1.2 }), wantErr: true},
		{name: "threshold zero", rules: withRules(func(r *BudgetRules) { r.IncreaseThreshold = 0 }), wantErr: true},
		{name: "custo por lead negativo", rules: withRules(func(r *BudgetRules) { r.CostPerLead = -1 }), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBudgetRules)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBudgetRulesPatch_Apply(t *testing.T) {
	threshold := 1.2
	cpl := 35.0

	got := BudgetRulesPatch{IncreaseThreshold: &threshold, CostPerLead: &cpl}.Apply(DefaultBudgetRules())

	want := DefaultBudgetRules()
	want.IncreaseThreshold = 1.2
	want.CostPerLead = 35
	assert.Equal(t, want, got)

	assert.Equal(t, DefaultBudgetRules(), BudgetRulesPatch{}.Apply(DefaultBudgetRules()))
}
