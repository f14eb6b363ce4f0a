package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dryRunFlag, applyFlag = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoadSettings(t *testing.T) {
	t.Run("arquivo completo", func(t *testing.T) {
		path := writeSettings(t, `
sales_source_type: google_sheets
dry_run: false
google_sheets:
  spreadsheet_id: sheet-123
  range_name: "Feuille 1!A1:Z10"
ad_platforms:
  meta:
    enabled: true
    access_token: token
    ad_account_id: act_42
    dry_run: true
budget_rules:
  increase_threshold: 1.2
  decrease_threshold: 0.8
  increase_percentage: 0.15
  decrease_percentage: 0.05
  cost_per_lead: 25
`)

		s, err := loadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, domain.SalesSourceGoogleSheets, s.SalesSourceType)
		assert.Equal(t, "sheet-123", s.GoogleSheets.SpreadsheetID)
		assert.Equal(t, 1.2, s.BudgetRules.IncreaseThreshold)
		assert.Equal(t, 25.0, s.BudgetRules.CostPerLead)
		assert.True(t, s.MetaPlatform().Ready())
		assert.True(t, s.MetaPlatform().DryRun)
		require.NotNil(t, s.DryRun)
		assert.False(t, *s.DryRun)
		assert.Equal(t, defaultResources, s.ResourcesRange)
	})

	t.Run("arquivo vazio usa os padrões", func(t *testing.T) {
		s, err := loadSettings(writeSettings(t, "{}"))
		require.NoError(t, err)

		assert.Equal(t, domain.SalesSourceMock, s.SalesSourceType)
		assert.Equal(t, domain.DefaultBudgetRules(), s.BudgetRules)
		assert.Equal(t, "https://graph.facebook.com/v19.0", s.metaConfig().URL)
	})

	t.Run("regra parcial mantém as demais no padrão", func(t *testing.T) {
		s, err := loadSettings(writeSettings(t, "budget_rules:\n  increase_threshold: 1.2\n"))
		require.NoError(t, err)

		want := domain.DefaultBudgetRules()
		want.IncreaseThreshold = 1.2
		assert.Equal(t, want, s.BudgetRules)
	})

	t.Run("regras inválidas", func(t *testing.T) {
		_, err := loadSettings(writeSettings(t, `
budget_rules:
  increase_threshold: 0.8
  decrease_threshold: 1.2
`))
		assert.ErrorIs(t, err, domain.ErrInvalidBudgetRules)
	})

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := loadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestResolveDryRun(t *testing.T) {
	no := false

	tests := []struct {
		name    string
		file    *bool
		dryRun  bool
		apply   bool
		want    bool
		wantErr bool
	}{
		{name: "padrão é simular", want: true},
		{name: "arquivo desliga", file: &no, want: false},
		{name: "--dry-run vence o arquivo", file: &no, dryRun: true, want: true},
		{name: "--apply", apply: true, want: false},
		{name: "flags conflitantes", dryRun: true, apply: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{DryRun: tt.file}

			got, err := s.ResolveDryRun(tt.dryRun, tt.apply)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunCommandWithMockSources(t *testing.T) {
	path := writeSettings(t, "sales_source_type: mock\n")

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)

	var result domain.OptimizationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.True(t, result.DryRun)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, domain.ActionIncrease, result.Recommendations[0].BudgetRecommendation.Action)
	assert.Equal(t, domain.ActionDecrease, result.Recommendations[1].BudgetRecommendation.Action)
	assert.Equal(t, domain.ActionMaintain, result.Recommendations[2].BudgetRecommendation.Action)

	require.Len(t, result.Changes, 2)
	for _, change := range result.Changes {
		assert.True(t, change.DryRun)
		assert.True(t, change.Success)
	}
}

func TestStatusCommand(t *testing.T) {
	path := writeSettings(t, "sales_source_type: mock\n")

	out, err := execute(t, "status", "--config", path)
	require.NoError(t, err)

	var status domain.GlobalStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))

	assert.Nil(t, status.Daily.Cap)
	assert.Equal(t, "Leads/Day", status.Daily.Unit)
	assert.InDelta(t, status.Daily.Current*5, status.Weekly.Current, 1e-9)
}
