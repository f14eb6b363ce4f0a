package domain

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusNotFound CampaignStatus = "NOT_FOUND"
)

type CampaignRecord struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	DailyBudget float64        `json:"daily_budget"`
	Status      CampaignStatus `json:"status"`
	Objective   string         `json:"objective,omitempty"`
	PlatformID  *string        `json:"platform_id,omitempty"`
}

type Action string

const (
	ActionIncrease Action = "INCREASE"
	ActionDecrease Action = "DECREASE"
	ActionMaintain Action = "MAINTAIN"
)

type Decision struct {
	Action     Action  `json:"action"`
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
	PlatformID *string `json:"platform_id,omitempty"`
}

type Metrics struct {
	Actual    float64 `json:"actual"`
	Objective float64 `json:"objective"`
	Name      string  `json:"name"`
}

// Recommendation é a linha entregue pela API para cada registro de desempenho
type Recommendation struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Status               CampaignStatus `json:"status"`
	Metrics              Metrics        `json:"metrics"`
	BudgetRecommendation Decision       `json:"budget_recommendation"`
	CurrentBudget        float64        `json:"current_budget"`

	// CampaignID é o id da campanha casada na plataforma (vazio quando NOT_FOUND)
	CampaignID string `json:"-"`
}

type CapacityGauge struct {
	Cap     *float64 `json:"cap"`
	Current float64  `json:"current"`
	Unit    string   `json:"unit"`
}

type GlobalStatus struct {
	Daily  CapacityGauge `json:"daily"`
	Weekly CapacityGauge `json:"weekly"`
}
