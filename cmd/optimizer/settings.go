package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultMetaBaseURL  = "https://graph.facebook.com"
	defaultMetaVersion  = "v19.0"
	defaultMetaTimeout  = 30 * time.Second
	defaultPerformance  = "Feuille 1!A1:Z10"
	defaultResources    = "Ressources Sales!A1:C10"
	defaultCredentials  = "service_account.json"
	defaultCampaignPage = 50
)

// Settings é o arquivo YAML da execução avulsa, sem banco de dados
type Settings struct {
	domain.OptimizationConfig `yaml:",inline"`

	// DryRun ausente equivale a true
	DryRun          *bool  `yaml:"dry_run"`
	CredentialsFile string `yaml:"credentials_file"`
	ResourcesRange  string `yaml:"resources_range"`
	MetaVersion     string `yaml:"meta_version"`
}

func loadSettings(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	// regras omitidas no arquivo mantêm o padrão
	s := Settings{OptimizationConfig: domain.OptimizationConfig{BudgetRules: domain.DefaultBudgetRules()}}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar %s", path)
	}

	s.applyDefaults()

	if err := s.BudgetRules.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) applyDefaults() {
	if s.SalesSourceType == "" {
		s.SalesSourceType = domain.SalesSourceMock
	}
	if s.GoogleSheets.RangeName == "" {
		s.GoogleSheets.RangeName = defaultPerformance
	}
	if s.ResourcesRange == "" {
		s.ResourcesRange = defaultResources
	}
	if s.CredentialsFile == "" {
		s.CredentialsFile = defaultCredentials
	}
	if s.MetaVersion == "" {
		s.MetaVersion = defaultMetaVersion
	}
}

// ResolveDryRun combina o arquivo com as flags; --apply e --dry-run juntas são um erro
func (s *Settings) ResolveDryRun(dryRunFlag, applyFlag bool) (bool, error) {
	if dryRunFlag && applyFlag {
		return false, errors.New("use apenas uma das flags --dry-run ou --apply")
	}

	switch {
	case dryRunFlag:
		return true, nil
	case applyFlag:
		return false, nil
	case s.DryRun != nil:
		return *s.DryRun, nil
	default:
		return true, nil
	}
}

func (s *Settings) metaConfig() config.Meta {
	return config.Meta{
		BaseURL:        defaultMetaBaseURL,
		Version:        s.MetaVersion,
		URL:            fmt.Sprintf("%s/%s", defaultMetaBaseURL, s.MetaVersion),
		RequestTimeout: defaultMetaTimeout,
		CampaignLimit:  defaultCampaignPage,
	}
}
