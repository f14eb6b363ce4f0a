package domain

// PerformanceRecord é o desempenho de vendas de uma campanha ou equipe
type PerformanceRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Actual     float64 `json:"actual"`
	Objective  float64 `json:"objective"`
	MetricName string  `json:"metric_name"`
}

// PerformancePayload agrupa os registros de desempenho e os limites globais de capacidade.
// Caps nulos significam "sem limite".
type PerformancePayload struct {
	Campaigns       map[string]PerformanceRecord `json:"campaigns"`
	GlobalCap       *float64                     `json:"global_cap"`
	GlobalCapWeekly *float64                     `json:"global_cap_weekly"`
}

func EmptyPerformancePayload() *PerformancePayload {
	return &PerformancePayload{
		Campaigns: map[string]PerformanceRecord{},
	}
}
