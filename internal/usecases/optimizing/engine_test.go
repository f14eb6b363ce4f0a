package optimizing

import (
	"testing"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEngine_CalculateAdjustment(t *testing.T) {
	engine := NewEngine(domain.DefaultBudgetRules())

	tests := []struct {
		name           string
		perf           domain.PerformanceRecord
		globalScaling  float64
		wantAction     domain.Action
		wantMultiplier float64
		wantReason     string
	}{
		{
			name:           "acima do objetivo aumenta",
			perf:           domain.PerformanceRecord{Actual: 12500, Objective: 10000},
			globalScaling:  1,
			wantAction:     domain.ActionIncrease,
			wantMultiplier: 1.1,
			wantReason:     "High Performance (CVR 125%)",
		},
		{
			name:           "abaixo do objetivo reduz",
			perf:           domain.PerformanceRecord{Actual: 7000, Objective: 10000},
			globalScaling:  1,
			wantAction:     domain.ActionDecrease,
			wantMultiplier: 0.9,
			wantReason:     "Low Performance (CVR 70%)",
		},
		{
			name:           "dentro da faixa mantém",
			perf:           domain.PerformanceRecord{Actual: 10500, Objective: 10000},
			globalScaling:  1,
			wantAction:     domain.ActionMaintain,
			wantMultiplier: 1,
			wantReason:     "Stable Performance",
		},
		{
			name:           "limite superior exato aumenta",
			perf:           domain.PerformanceRecord{Actual: 11000, Objective: 10000},
			globalScaling:  1,
			wantAction:     domain.ActionIncrease,
			wantMultiplier: 1.1,
			wantReason:     "High Performance (CVR 110%)",
		},
		{
			name:           "limite inferior exato reduz",
			perf:           domain.PerformanceRecord{Actual: 9000, Objective: 10000},
			globalScaling:  1,
			wantAction:     domain.ActionDecrease,
			wantMultiplier: 0.9,
			wantReason:     "Low Performance (CVR 90%)",
		},
		{
			name:           "objetivo zero não gera motivo de desempenho",
			perf:           domain.PerformanceRecord{Actual: 500, Objective: 0},
			globalScaling:  1,
			wantAction:     domain.ActionMaintain,
			wantMultiplier: 1,
			wantReason:     "",
		},
		{
			name:           "objetivo negativo com limite global",
			perf:           domain.PerformanceRecord{Actual: 500, Objective: -10},
			globalScaling:  0.5,
			wantAction:     domain.ActionDecrease,
			wantMultiplier: 0.5,
			wantReason:     "Global Cap Limit (50%)",
		},
		{
			name:           "alto desempenho limitado pela capacidade global",
			perf:           domain.PerformanceRecord{Actual: 12500, Objective: 10000},
			globalScaling:  10.0 / 22.5,
			wantAction:     domain.ActionDecrease,
			wantMultiplier: 0.49,
			wantReason:     "High Performance (CVR 125%) + Global Cap Limit (44%)",
		},
		{
			name:           "fator global mínimo é preso em 0.01",
			perf:           domain.PerformanceRecord{Actual: 1, Objective: 10000},
			globalScaling:  0.001,
			wantAction:     domain.ActionDecrease,
			wantMultiplier: 0.01,
			wantReason:     "Low Performance (CVR 0%) + Global Cap Limit (0%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.CalculateAdjustment(tt.perf, tt.globalScaling)

			assert.Equal(t, tt.wantAction, decision.Action)
			assert.InDelta(t, tt.wantMultiplier, decision.Multiplier, 1e-9)
			assert.Equal(t, tt.wantReason, decision.Reason)
			assert.Greater(t, decision.Multiplier, 0.0)
		})
	}
}

func TestEngine_MaintainBand(t *testing.T) {
	engine := NewEngine(domain.DefaultBudgetRules())
	perf := domain.PerformanceRecord{Actual: 10000, Objective: 10000}

	assert.Equal(t, domain.ActionMaintain, engine.CalculateAdjustment(perf, 0.99).Action)
	assert.Equal(t, domain.ActionDecrease, engine.CalculateAdjustment(perf, 0.97).Action)
}

func TestEngine_CustomRules(t *testing.T) {
	engine := NewEngine(domain.BudgetRules{
		IncreaseThreshold:  1.5,
		DecreaseThreshold:  0.5,
		IncreasePercentage: 0.25,
		DecreasePercentage: 0.2,
		CostPerLead:        20,
	})

	decision := engine.CalculateAdjustment(domain.PerformanceRecord{Actual: 130, Objective: 100}, 1)
	assert.Equal(t, domain.ActionMaintain, decision.Action)
	assert.Equal(t, "Stable Performance", decision.Reason)

	decision = engine.CalculateAdjustment(domain.PerformanceRecord{Actual: 160, Objective: 100}, 1)
	assert.Equal(t, domain.ActionIncrease, decision.Action)
	assert.InDelta(t, 1.25, decision.Multiplier, 1e-9)

	decision = engine.CalculateAdjustment(domain.PerformanceRecord{Actual: 40, Objective: 100}, 1)
	assert.Equal(t, domain.ActionDecrease, decision.Action)
	assert.InDelta(t, 0.8, decision.Multiplier, 1e-9)
}

func TestEngine_FullIncrease(t *testing.T) {
	rules := domain.DefaultBudgetRules()
	rules.IncreasePercentage = 1
	assert.NoError(t, rules.Validate())

	decision := NewEngine(rules).CalculateAdjustment(domain.PerformanceRecord{Actual: 12500, Objective: 10000}, 1)
	assert.Equal(t, domain.ActionIncrease, decision.Action)
	assert.InDelta(t, 2.0, decision.Multiplier, 1e-9)
}
