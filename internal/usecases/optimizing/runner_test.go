package optimizing

import (
	"context"
	"errors"
	"testing"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	connmocks "github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector/mocks"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCollect_SourceErrorsDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	perf := connmocks.NewMockPerformanceSource(ctrl)
	perf.EXPECT().GetPerformanceData(gomock.Any()).Return(nil, errors.New("sheets down"))

	campaigns := connmocks.NewMockCampaignSource(ctrl)
	campaigns.EXPECT().GetCampaigns(gomock.Any()).Return(nil, errors.New("token expired"))
	campaigns.EXPECT().Platform().Return("meta").AnyTimes()

	snapshot := Collect(context.Background(), connector.Sources{Performance: perf, Campaigns: campaigns})

	require.NotNil(t, snapshot.Performance)
	assert.Empty(t, snapshot.Performance.Campaigns)
	assert.Nil(t, snapshot.Performance.GlobalCap)
	assert.Empty(t, snapshot.Campaigns)
	assert.Empty(t, Reconcile(snapshot.Performance, snapshot.Campaigns, NewEngine(domain.DefaultBudgetRules())))
}

func TestStatus(t *testing.T) {
	snapshot := Snapshot{
		Performance: &domain.PerformancePayload{GlobalCap: floatPtr(280), GlobalCapWeekly: floatPtr(1400)},
		Campaigns:   mockCampaigns(),
	}

	status := Status(snapshot, domain.DefaultCostPerLead)

	assert.Equal(t, floatPtr(280), status.Daily.Cap)
	assert.InDelta(t, 22.5, status.Daily.Current, 1e-9)
	assert.Equal(t, "Leads/Day", status.Daily.Unit)
	assert.Equal(t, floatPtr(1400), status.Weekly.Cap)
	assert.InDelta(t, 112.5, status.Weekly.Current, 1e-9)
	assert.Equal(t, "Leads/Week", status.Weekly.Unit)

	empty := Status(Snapshot{}, 0)
	assert.Nil(t, empty.Daily.Cap)
	assert.Zero(t, empty.Daily.Current)
}

func TestApplyRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := connmocks.NewMockCampaignSource(ctrl)
	source.EXPECT().Platform().Return("meta").AnyTimes()
	source.EXPECT().UpdateBudget(gomock.Any(), "c1", 110.0).Return(nil)
	source.EXPECT().UpdateBudget(gomock.Any(), "c2", 180.0).Return(errors.New("rate limited"))

	recommendations := []domain.Recommendation{
		{ID: "a", CampaignID: "c1", CurrentBudget: 100, BudgetRecommendation: domain.Decision{Action: domain.ActionIncrease, Multiplier: 1.1}},
		{ID: "b", CampaignID: "c2", CurrentBudget: 200, BudgetRecommendation: domain.Decision{Action: domain.ActionDecrease, Multiplier: 0.9}},
		{ID: "c", CampaignID: "c3", CurrentBudget: 150, BudgetRecommendation: domain.Decision{Action: domain.ActionMaintain, Multiplier: 1}},
		{ID: "d", CurrentBudget: 0, BudgetRecommendation: domain.Decision{Action: domain.ActionIncrease, Multiplier: 1.1}},
		{ID: "e", CampaignID: "c5", CurrentBudget: 0, BudgetRecommendation: domain.Decision{Action: domain.ActionDecrease, Multiplier: 0.9}},
	}

	changes := ApplyRecommendations(context.Background(), source, 7, recommendations, false)
	require.Len(t, changes, 2)

	assert.True(t, changes[0].Success)
	assert.Equal(t, 110.0, changes[0].NewBudget)
	assert.Equal(t, 100.0, changes[0].PreviousBudget)
	assert.Equal(t, 7, changes[0].OrganizationID)
	assert.Equal(t, "meta", changes[0].Platform)
	assert.NotEmpty(t, changes[0].ID)
	assert.Nil(t, changes[0].ErrorMessage)

	assert.False(t, changes[1].Success)
	require.NotNil(t, changes[1].ErrorMessage)
	assert.Equal(t, "rate limited", *changes[1].ErrorMessage)
}

func TestApplyRecommendations_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := connmocks.NewMockCampaignSource(ctrl)
	source.EXPECT().Platform().Return("meta").AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	changes := ApplyRecommendations(ctx, source, 1, []domain.Recommendation{
		{ID: "a", CampaignID: "c1", CurrentBudget: 100, BudgetRecommendation: domain.Decision{Action: domain.ActionIncrease, Multiplier: 1.1}},
	}, false)
	assert.Empty(t, changes)
}
