package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/domain"
)

// UpdateCampaignDailyBudget altera o daily_budget (em centavos) de uma campanha
func (c *MetaClient) UpdateCampaignDailyBudget(ctx context.Context, credentials Credentials, campaignID string, budgetCents int64) error {
	if budgetCents <= 0 {
		return fmt.Errorf("orçamento inválido para a campanha %s: %d", campaignID, budgetCents)
	}

	form := url.Values{}
	form.Set("daily_budget", strconv.FormatInt(budgetCents, 10))
	authParams(form, credentials)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.cfg.URL, campaignID), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var response metadomain.UpdateResponse
	if err := c.do(req, &response); err != nil {
		return err
	}

	if !response.Success {
		return fmt.Errorf("meta não confirmou a alteração da campanha %s", campaignID)
	}

	return nil
}
