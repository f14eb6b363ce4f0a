package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	metadomain "github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// GetCampaignsByAccountID lista as campanhas ativas seguindo paging.next
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, credentials Credentials, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,daily_budget,objective")
	params.Add("effective_status", `["ACTIVE"]`)
	if c.cfg.CampaignLimit > 0 {
		params.Add("limit", strconv.Itoa(c.cfg.CampaignLimit))
	}
	authParams(params, credentials)

	next := fmt.Sprintf("%s/%s/campaigns?%s", c.cfg.URL, accountPath(accountID), params.Encode())

	campaigns := []metadomain.Campaign{}
	for page := 0; next != "" && page < maxCampaignPages; page++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		var response metadomain.CampaignsResponse
		if err := c.do(req, &response); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		next = response.Paging.Next
	}

	if next != "" {
		logrus.WithField("ad_account_id", accountID).Warnf("Limite de %d páginas de campanhas atingido", maxCampaignPages)
	}

	return campaigns, nil
}
