package repository

import (
	"testing"
	"time"

	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestBuildBudgetChangeList(t *testing.T) {
	since := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		since    *time.Time
		limit    int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "sem data e limite inválido usa teto",
			limit:    0,
			wantSQL:  "SELECT id, organization_id, campaign_id, platform_id, platform, previous_budget, new_budget, multiplier, action, dry_run, success, error_message, created_at FROM budget_changes WHERE organization_id = $1 ORDER BY created_at DESC LIMIT 100",
			wantArgs: []any{7},
		},
		{
			name:     "com data inicial",
			since:    &since,
			limit:    20,
			wantSQL:  "SELECT id, organization_id, campaign_id, platform_id, platform, previous_budget, new_budget, multiplier, action, dry_run, success, error_message, created_at FROM budget_changes WHERE organization_id = $1 AND created_at >= $2 ORDER BY created_at DESC LIMIT 20",
			wantArgs: []any{7, since},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildBudgetChangeList(7, tt.since, tt.limit).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildOrganizationUpdate(t *testing.T) {
	rules := domain.DefaultBudgetRules()
	org := &domain.Organization{
		ID:            3,
		GoogleSheetID: stringPtr("sheet-123"),
		BudgetRules:   &rules,
	}

	query, err := buildOrganizationUpdate(org)
	require.NoError(t, err)

	sql, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE organizations SET google_sheet_id = $1, drive_folder_id = $2, updated_at = $3")
	assert.Contains(t, sql, "budget_rules = $4")
	assert.NotContains(t, sql, "bot_settings")
	assert.Contains(t, sql, "WHERE id = $5")
	assert.Equal(t, stringPtr("sheet-123"), args[0])
	assert.JSONEq(t, `{"increase_threshold":1.1,"decrease_threshold":0.9,"increase_percentage":0.1,"decrease_percentage":0.1,"cost_per_lead":20}`, args[3].(string))
}

func TestBuildIntegrationUpsert(t *testing.T) {
	query, err := buildIntegrationUpsert(&domain.Integration{
		OrganizationID: 1,
		Provider:       domain.ProviderMeta,
		Enabled:        true,
		Credentials:    map[string]any{"access_token": "tok"},
	})
	require.NoError(t, err)

	sql, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO integrations (organization_id,provider,is_enabled,credentials,updated_at)")
	assert.Contains(t, sql, "ON CONFLICT (organization_id, provider) DO UPDATE SET")
	assert.Equal(t, domain.ProviderMeta, args[1])
	assert.JSONEq(t, `{"access_token":"tok"}`, args[3].(string))
}

func TestBuildSummariesQuery(t *testing.T) {
	sql, args, err := buildSummariesQuery().ToSql()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "FROM organizations o")
	assert.Contains(t, sql, "SELECT COUNT(*) FROM users u WHERE u.organization_id = o.id")
}
