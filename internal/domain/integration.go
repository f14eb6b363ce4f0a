package domain

import "time"

type Provider string

const (
	ProviderMeta   Provider = "meta"
	ProviderGoogle Provider = "google"
	ProviderSnap   Provider = "snap"
	ProviderTikTok Provider = "tiktok"
)

var Providers = []Provider{ProviderMeta, ProviderGoogle, ProviderSnap, ProviderTikTok}

func (p Provider) IsValid() bool {
	for _, provider := range Providers {
		if p == provider {
			return true
		}
	}
	return false
}

type Integration struct {
	ID             int            `json:"id"`
	OrganizationID int            `json:"organization_id"`
	Provider       Provider       `json:"provider"`
	Enabled        bool           `json:"is_enabled"`
	Credentials    map[string]any `json:"credentials"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IntegrationCredentials é a forma tipada do JSON de credenciais
type IntegrationCredentials struct {
	AccessToken string `json:"access_token,omitempty" mapstructure:"access_token,omitempty"`
	AdAccountID string `json:"ad_account_id,omitempty" mapstructure:"ad_account_id,omitempty"`
	AppID       string `json:"app_id,omitempty" mapstructure:"app_id,omitempty"`
	AppSecret   string `json:"app_secret,omitempty" mapstructure:"app_secret,omitempty"`
	DryRun      *bool  `json:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

type UpsertIntegrationRequest struct {
	Enabled bool `json:"enabled"`
	IntegrationCredentials
}
