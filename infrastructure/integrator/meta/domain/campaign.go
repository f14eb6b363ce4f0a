package metadomain

import (
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Campaign é a campanha como a Graph API devolve; daily_budget vem em centavos, como texto
type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DailyBudget string `json:"daily_budget"`
	Objective   string `json:"objective"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type CampaignsResponse struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}

type UpdateResponse struct {
	Success bool `json:"success"`
}

// ToRecord converte para o formato comum das plataformas. Campanhas com orçamento
// no conjunto de anúncios (sem daily_budget) ficam com orçamento 0.
func (c Campaign) ToRecord() domain.CampaignRecord {
	budget, err := utils.FromCents(c.DailyBudget)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", c.ID).Warn("daily_budget ilegível")
		budget = 0
	}

	platformID := c.ID

	return domain.CampaignRecord{
		ID:          c.ID,
		Name:        c.Name,
		DailyBudget: budget,
		Status:      domain.CampaignStatus(c.Status),
		Objective:   c.Objective,
		PlatformID:  &platformID,
	}
}
