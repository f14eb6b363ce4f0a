package meta

import (
	"context"
	"errors"
	"testing"

	metadomain "github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/domain"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var platformConfig = domain.AdPlatformConfig{
	Enabled:     true,
	AccessToken: "tok",
	AdAccountID: "act_42",
	AppSecret:   "secret",
}

func TestCampaignSource_GetCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), metaclient.Credentials{AccessToken: "tok", AppSecret: "secret"}, "act_42").
		Return([]metadomain.Campaign{
			{ID: "2385", Name: "Alpha Launch", Status: "ACTIVE", DailyBudget: "15000"},
			{ID: "2386", Name: "CBO", Status: "ACTIVE"},
		}, nil)

	campaigns, err := NewCampaignSource(client, platformConfig, true).GetCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	alpha := campaigns["2385"]
	assert.Equal(t, 150.0, alpha.DailyBudget)
	assert.Equal(t, domain.CampaignStatusActive, alpha.Status)
	require.NotNil(t, alpha.PlatformID)
	assert.Equal(t, "2385", *alpha.PlatformID)
	assert.Zero(t, campaigns["2386"].DailyBudget)
}

func TestCampaignSource_GetCampaignsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, metadomain.ErrTokenExpired)

	_, err := NewCampaignSource(client, platformConfig, true).GetCampaigns(context.Background())
	assert.ErrorIs(t, err, metadomain.ErrTokenExpired)
}

func TestCampaignSource_UpdateBudget(t *testing.T) {
	tests := []struct {
		name    string
		dryRun  bool
		setup   func(client *mocks.MockClient)
		wantErr bool
	}{
		{
			name:   "dry run não chama a api",
			dryRun: true,
			setup:  func(client *mocks.MockClient) {},
		},
		{
			name: "converte para centavos",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					UpdateCampaignDailyBudget(gomock.Any(), gomock.Any(), "2385", int64(16500)).
					Return(nil)
			},
		},
		{
			name: "erro da plataforma",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					UpdateCampaignDailyBudget(gomock.Any(), gomock.Any(), "2385", int64(16500)).
					Return(errors.New("rate limited"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			err := NewCampaignSource(client, platformConfig, tt.dryRun).UpdateBudget(context.Background(), "2385", 165)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
