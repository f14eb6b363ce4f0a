package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesSource_GetPerformanceData(t *testing.T) {
	payload, err := NewSalesSource().GetPerformanceData(context.Background())
	require.NoError(t, err)

	assert.Len(t, payload.Campaigns, 3)
	assert.Nil(t, payload.GlobalCap)
	assert.Nil(t, payload.GlobalCapWeekly)
	assert.Equal(t, 12500.0, payload.Campaigns["campaign_1"].Actual)
	assert.Equal(t, 7000.0, payload.Campaigns["campaign_2"].Actual)
	assert.Empty(t, payload.Campaigns["campaign_2"].Name)
}

func TestAdSource_UpdateBudget(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		dryRun     bool
		campaignID string
		wantErr    bool
		wantBudget float64
	}{
		{name: "dry run não altera orçamento", dryRun: true, campaignID: "campaign_1", wantBudget: 100},
		{name: "aplica novo orçamento", dryRun: false, campaignID: "campaign_1", wantBudget: 110},
		{name: "campanha inexistente", dryRun: false, campaignID: "campaign_9", wantErr: true, wantBudget: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewAdSource("Meta Ads (Mock)", tt.dryRun)

			err := source.UpdateBudget(ctx, tt.campaignID, 110)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			campaigns, err := source.GetCampaigns(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBudget, campaigns["campaign_1"].DailyBudget)
		})
	}
}

func TestAdSource_GetCampaignsReturnsCopy(t *testing.T) {
	source := NewAdSource("Meta Ads (Mock)", false)

	campaigns, err := source.GetCampaigns(context.Background())
	require.NoError(t, err)
	delete(campaigns, "campaign_1")

	again, err := source.GetCampaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 3)
}
