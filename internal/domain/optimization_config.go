package domain

type SalesSourceType string

const (
	SalesSourceMock         SalesSourceType = "mock"
	SalesSourceGoogleSheets SalesSourceType = "google_sheets"
)

type GoogleSheetsConfig struct {
	SpreadsheetID string `json:"spreadsheet_id" yaml:"spreadsheet_id"`
	RangeName     string `json:"range_name" yaml:"range_name"`
	DriveFolderID string `json:"drive_folder_id" yaml:"drive_folder_id"`
}

type AdPlatformConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	AccessToken string `json:"access_token,omitempty" yaml:"access_token"`
	AdAccountID string `json:"ad_account_id,omitempty" yaml:"ad_account_id"`
	AppID       string `json:"app_id,omitempty" yaml:"app_id"`
	AppSecret   string `json:"app_secret,omitempty" yaml:"app_secret"`
	DryRun      bool   `json:"dry_run" yaml:"dry_run"`
}

// Ready indica se há credenciais suficientes para falar com a plataforma real
func (c AdPlatformConfig) Ready() bool {
	return c.Enabled && c.AccessToken != "" && c.AdAccountID != ""
}

type Billing struct {
	Plan Plan `json:"plan"`
}

// OptimizationConfig é a configuração efetiva de otimização de uma organização
type OptimizationConfig struct {
	OrganizationID  int                           `json:"organization_id"`
	SalesSourceType SalesSourceType               `json:"sales_source_type" yaml:"sales_source_type"`
	GoogleSheets    GoogleSheetsConfig            `json:"google_sheets" yaml:"google_sheets"`
	AdPlatforms     map[Provider]AdPlatformConfig `json:"ad_platforms" yaml:"ad_platforms"`
	Billing         Billing                       `json:"billing"`
	BudgetRules     BudgetRules                   `json:"budget_rules" yaml:"budget_rules"`
	BotSettings     BotSettings                   `json:"bot_settings"`
}

// MetaPlatform retorna a configuração do Meta, se existir
func (c OptimizationConfig) MetaPlatform() AdPlatformConfig {
	if c.AdPlatforms == nil {
		return AdPlatformConfig{DryRun: true}
	}
	cfg, ok := c.AdPlatforms[ProviderMeta]
	if !ok {
		return AdPlatformConfig{DryRun: true}
	}
	return cfg
}

type UpdateConfigRequest struct {
	GoogleSheetID *string           `json:"google_sheet_id"`
	DriveFolderID *string           `json:"drive_folder_id"`
	BudgetRules   *BudgetRulesPatch `json:"budget_rules"`
	BotSettings   *BotSettings      `json:"bot_settings"`
}

type CreateSheetRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

type Spreadsheet struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
}
