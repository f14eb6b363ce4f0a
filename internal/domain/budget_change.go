package domain

import "time"

// BudgetChange registra uma tentativa de alteração de orçamento (auditoria)
type BudgetChange struct {
	ID             string    `json:"id"`
	OrganizationID int       `json:"organization_id"`
	CampaignID     string    `json:"campaign_id"`
	PlatformID     *string   `json:"platform_id,omitempty"`
	Platform       string    `json:"platform"`
	PreviousBudget float64   `json:"previous_budget"`
	NewBudget      float64   `json:"new_budget"`
	Multiplier     float64   `json:"multiplier"`
	Action         Action    `json:"action"`
	DryRun         bool      `json:"dry_run"`
	Success        bool      `json:"success"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type OptimizationResult struct {
	DryRun          bool             `json:"dry_run"`
	Recommendations []Recommendation `json:"recommendations"`
	Changes         []BudgetChange   `json:"changes"`
}
