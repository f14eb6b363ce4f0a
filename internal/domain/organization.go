package domain

import "time"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanGrowth  Plan = "growth"
	PlanSuper   Plan = "super"
)

// PlanMonthlyPrice é o preço mensal de cada plano, usado no cálculo de MRR
var PlanMonthlyPrice = map[Plan]float64{
	PlanFree:    0,
	PlanStarter: 39,
	PlanGrowth:  149,
	PlanSuper:   299,
}

func (p Plan) IsValid() bool {
	_, ok := PlanMonthlyPrice[p]
	return ok
}

type Organization struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	GoogleSheetID *string      `json:"google_sheet_id"`
	DriveFolderID *string      `json:"drive_folder_id"`
	Plan          Plan         `json:"plan"`
	BudgetRules   *BudgetRules `json:"budget_rules,omitempty"`
	BotSettings   *BotSettings `json:"bot_settings,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type BotSettings struct {
	GlobalBudgetCap       float64 `json:"global_budget_cap"`
	TargetROAS            float64 `json:"target_roas"`
	OptimizationFrequency string  `json:"optimization_frequency"`
	AutoScalingEnabled    bool    `json:"auto_scaling_enabled"`
}

func DefaultBotSettings() BotSettings {
	return BotSettings{
		GlobalBudgetCap:       5000,
		TargetROAS:            2.5,
		OptimizationFrequency: "daily",
		AutoScalingEnabled:    true,
	}
}

// OrganizationSummary é a visão administrativa de uma organização
type OrganizationSummary struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	AdminEmail    *string `json:"admin_email"`
	UserCount     int     `json:"user_count"`
	Plan          Plan    `json:"plan"`
	GoogleSheetID *string `json:"google_sheet_id"`
	DriveFolderID *string `json:"drive_folder_id"`
	Status        string  `json:"status"`
}

type PlatformStats struct {
	TotalOrganizations int     `json:"total_organizations"`
	ActiveUsers        int     `json:"active_users"`
	MRR                float64 `json:"mrr"`
}
