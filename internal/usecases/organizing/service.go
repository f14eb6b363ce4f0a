package organizing

import (
	"context"
	"strings"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/infrastructure/repository"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Organizer interface {
	LoadOptimizationConfig(ctx context.Context, organizationID int) (*domain.OptimizationConfig, error)
	UpdateConfig(ctx context.Context, organizationID int, req *domain.UpdateConfigRequest) (*domain.OptimizationConfig, error)
	UpsertIntegration(ctx context.Context, organizationID int, provider domain.Provider, req *domain.UpsertIntegrationRequest) (*domain.Integration, error)
	ActivatePlan(ctx context.Context, organizationID int, plan domain.Plan) (*domain.Billing, error)
	CreateSheet(ctx context.Context, organizationID int, req *domain.CreateSheetRequest) (*domain.Spreadsheet, error)
	ServiceAccountEmail() *string
	ListAutoScalingOrganizations(ctx context.Context) ([]int, error)
}

// SheetCreator copia o modelo de planilha para um cliente
type SheetCreator interface {
	CreateFromTemplate(ctx context.Context, clientName, clientEmail, folderID string) (*domain.Spreadsheet, error)
}

// TokenExchanger troca o token do Meta por um de longa duração
type TokenExchanger interface {
	ExchangeLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*metaclient.TokenResponse, error)
}

// defaultPlatforms sempre aparecem na configuração, mesmo sem integração cadastrada
var defaultPlatforms = []domain.Provider{domain.ProviderMeta, domain.ProviderGoogle, domain.ProviderSnap}

type Options struct {
	DefaultRules       domain.BudgetRules
	PerformanceRange   string
	ServiceAccountPath string
}

type Service struct {
	orgRepo         repository.OrganizationRepository
	integrationRepo repository.IntegrationRepository
	sheets          SheetCreator
	tokens          TokenExchanger
	opts            Options
}

// NewService aceita sheets e tokens nil quando o Google ou o Meta não estão configurados no servidor
func NewService(
	orgRepo repository.OrganizationRepository,
	integrationRepo repository.IntegrationRepository,
	sheets SheetCreator,
	tokens TokenExchanger,
	opts Options,
) Organizer {
	return &Service{
		orgRepo:         orgRepo,
		integrationRepo: integrationRepo,
		sheets:          sheets,
		tokens:          tokens,
		opts:            opts,
	}
}

func (s *Service) getOrganization(ctx context.Context, organizationID int) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "erro ao consultar organização")
	}
	if org == nil {
		return nil, NewOrganizationError(ErrOrganizationNotFound, apiErrors.ErrOrganizationNotFound, organizationID, "")
	}
	return org, nil
}

// LoadOptimizationConfig monta a configuração a partir da organização e das integrações.
// A planilha só é a fonte de vendas quando há um spreadsheet id salvo.
func (s *Service) LoadOptimizationConfig(ctx context.Context, organizationID int) (*domain.OptimizationConfig, error) {
	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	integrations, err := s.integrationRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "erro ao consultar integrações")
	}

	return s.buildConfig(org, integrations), nil
}

func (s *Service) buildConfig(org *domain.Organization, integrations []*domain.Integration) *domain.OptimizationConfig {
	cfg := &domain.OptimizationConfig{
		OrganizationID:  org.ID,
		SalesSourceType: domain.SalesSourceMock,
		GoogleSheets: domain.GoogleSheetsConfig{
			SpreadsheetID: deref(org.GoogleSheetID),
			RangeName:     s.opts.PerformanceRange,
			DriveFolderID: deref(org.DriveFolderID),
		},
		AdPlatforms: make(map[domain.Provider]domain.AdPlatformConfig, len(domain.Providers)),
		Billing:     domain.Billing{Plan: domain.PlanFree},
		BudgetRules: s.opts.DefaultRules,
		BotSettings: domain.DefaultBotSettings(),
	}

	if cfg.GoogleSheets.SpreadsheetID != "" {
		cfg.SalesSourceType = domain.SalesSourceGoogleSheets
	}

	if org.Plan != "" {
		cfg.Billing.Plan = org.Plan
	}

	if org.BudgetRules != nil {
		cfg.BudgetRules = *org.BudgetRules
	}

	if org.BotSettings != nil {
		cfg.BotSettings = *org.BotSettings
	}

	for _, provider := range defaultPlatforms {
		cfg.AdPlatforms[provider] = domain.AdPlatformConfig{DryRun: true}
	}

	for _, integration := range integrations {
		if !integration.Provider.IsValid() {
			continue
		}
		cfg.AdPlatforms[integration.Provider] = platformConfig(org.ID, integration)
	}

	return cfg
}

// platformConfig decodifica o JSON de credenciais; sem dry_run explícito a integração fica em dry-run
func platformConfig(organizationID int, integration *domain.Integration) domain.AdPlatformConfig {
	var creds domain.IntegrationCredentials

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &creds,
		WeaklyTypedInput: true,
	})
	if err == nil {
		err = decoder.Decode(integration.Credentials)
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"organization_id": organizationID,
			"platform":        integration.Provider,
		}).Warn("Credenciais de integração inválidas, ignorando")
	}

	platform := domain.AdPlatformConfig{
		Enabled:     integration.Enabled,
		AccessToken: creds.AccessToken,
		AdAccountID: creds.AdAccountID,
		AppID:       creds.AppID,
		AppSecret:   creds.AppSecret,
		DryRun:      true,
	}
	if creds.DryRun != nil {
		platform.DryRun = *creds.DryRun
	}

	return platform
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optionalString converte "" em nil para limpar a coluna
func optionalString(s *string) *string {
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// UpdateConfig altera só os campos enviados. Regras parciais completam as atuais (ou as padrão) e são validadas antes de gravar
func (s *Service) UpdateConfig(ctx context.Context, organizationID int, req *domain.UpdateConfigRequest) (*domain.OptimizationConfig, error) {
	if req == nil {
		return nil, NewOrganizationError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, organizationID, "corpo da requisição vazio")
	}

	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if req.BudgetRules != nil {
		base := s.opts.DefaultRules
		if org.BudgetRules != nil {
			base = *org.BudgetRules
		}

		rules := req.BudgetRules.Apply(base)
		if err := rules.Validate(); err != nil {
			return nil, NewOrganizationError(err, apiErrors.ErrInvalidBudgetRules, organizationID, "")
		}
		org.BudgetRules = &rules
	}

	if req.GoogleSheetID != nil {
		org.GoogleSheetID = optionalString(req.GoogleSheetID)
	}

	if req.DriveFolderID != nil {
		org.DriveFolderID = optionalString(req.DriveFolderID)
	}

	if req.BotSettings != nil {
		org.BotSettings = req.BotSettings
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "erro ao salvar configuração")
	}

	logrus.WithField("organization_id", organizationID).Info("Configuração da organização atualizada")

	return s.LoadOptimizationConfig(ctx, organizationID)
}

// UpsertIntegration grava as credenciais da plataforma. Com app_id e app_secret o token do Meta
// é trocado por um de longa duração; se a troca falhar o token original é mantido.
func (s *Service) UpsertIntegration(ctx context.Context, organizationID int, provider domain.Provider, req *domain.UpsertIntegrationRequest) (*domain.Integration, error) {
	if !provider.IsValid() {
		return nil, NewOrganizationError(ErrInvalidProvider, apiErrors.ErrInvalidProvider, organizationID, string(provider))
	}
	if req == nil {
		req = &domain.UpsertIntegrationRequest{}
	}

	if _, err := s.getOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	creds := req.IntegrationCredentials
	if provider == domain.ProviderMeta {
		creds.AccessToken = s.exchangeToken(ctx, organizationID, creds)
	}

	credentials := map[string]any{}
	if err := mapstructure.Decode(creds, &credentials); err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrInvalidFormat, organizationID, "credenciais inválidas")
	}

	integration := &domain.Integration{
		OrganizationID: organizationID,
		Provider:       provider,
		Enabled:        req.Enabled,
		Credentials:    credentials,
	}

	if err := s.integrationRepo.Upsert(ctx, integration); err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "erro ao salvar integração")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"platform":        provider,
		"enabled":         req.Enabled,
	}).Info("Integração atualizada")

	return integration, nil
}

func (s *Service) exchangeToken(ctx context.Context, organizationID int, creds domain.IntegrationCredentials) string {
	if s.tokens == nil || creds.AccessToken == "" || creds.AppID == "" || creds.AppSecret == "" {
		return creds.AccessToken
	}

	resp, err := s.tokens.ExchangeLongLivedToken(ctx, creds.AppID, creds.AppSecret, creds.AccessToken)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", organizationID).
			Warn("Não foi possível obter token de longa duração, mantendo o token informado")
		return creds.AccessToken
	}

	return resp.AccessToken
}

// ActivatePlan registra o plano escolhido; a cobrança acontece fora do sistema
func (s *Service) ActivatePlan(ctx context.Context, organizationID int, plan domain.Plan) (*domain.Billing, error) {
	plan = domain.Plan(strings.ToLower(strings.TrimSpace(string(plan))))
	if !plan.IsValid() {
		return nil, NewOrganizationError(ErrInvalidPlan, apiErrors.ErrInvalidPlan, organizationID, string(plan))
	}

	if _, err := s.getOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	if err := s.orgRepo.UpdatePlan(ctx, organizationID, plan); err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "erro ao ativar plano")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"plan":            plan,
	}).Info("Plano ativado")

	return &domain.Billing{Plan: plan}, nil
}

// ListAutoScalingOrganizations devolve as organizações que aceitam otimização agendada
func (s *Service) ListAutoScalingOrganizations(ctx context.Context) ([]int, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, 0, "erro ao listar organizações")
	}

	var ids []int
	for _, org := range orgs {
		settings := domain.DefaultBotSettings()
		if org.BotSettings != nil {
			settings = *org.BotSettings
		}
		if settings.AutoScalingEnabled {
			ids = append(ids, org.ID)
		}
	}

	return ids, nil
}
