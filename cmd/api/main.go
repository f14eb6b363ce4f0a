package main

import (
	"context"
	"net/http"

	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/googlesheets"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/infrastructure/repository"
	"github.com/lrlucasdurand-code/unify/internal/api"
	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/lrlucasdurand-code/unify/internal/scheduler"
	"github.com/lrlucasdurand-code/unify/internal/usecases/administering"
	"github.com/lrlucasdurand-code/unify/internal/usecases/authenticating"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/lrlucasdurand-code/unify/internal/usecases/organizing"
	"github.com/lrlucasdurand-code/unify/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	orgRepo := repository.NewOrganizationRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	budgetChangeRepo := repository.NewBudgetChangeRepository(pgConn)

	sheetsReader, sheetCreator := googleClients(ctx, cfg.Google)

	metaClient := metaclient.NewClient(cfg.Meta, &http.Client{Timeout: cfg.Meta.RequestTimeout})

	factory := connector.NewFactory(sheetsReader, metaClient, googlesheets.Ranges{
		Performance: cfg.Google.PerformanceRange,
		Resources:   cfg.Google.ResourcesRange,
	})

	authenticator := authenticating.NewService(userRepo, orgRepo, cfg.SecretKey)

	organizer := organizing.NewService(orgRepo, integrationRepo, sheetCreator, metaClient, organizing.Options{
		DefaultRules:       cfg.Optimizer.BudgetRules(),
		PerformanceRange:   cfg.Google.PerformanceRange,
		ServiceAccountPath: cfg.Google.ServiceAccountPath,
	})

	optimizer := optimizing.NewService(organizer, factory, budgetChangeRepo)
	administrator := administering.NewService(orgRepo, userRepo)

	optimizationSyncService := scheduler.NewOptimizationSyncService(organizer, optimizer, cfg)
	if err := optimizationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de otimização")
	} else {
		logrus.Info("Agendador de otimização iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Organizer:     organizer,
		Optimizer:     optimizer,
		Administrator: administrator,
		Cron:          optimizationSyncService,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// googleClients devolve interfaces nil quando as credenciais não carregam, e aí a planilha degrada para dados vazios
func googleClients(ctx context.Context, cfg config.Google) (googlesheets.ValuesReader, organizing.SheetCreator) {
	client, err := googlesheets.NewClient(ctx, cfg.ServiceAccountPath)
	if err != nil {
		logrus.WithError(err).Warn("Google Sheets indisponível, seguindo sem planilhas")
		return nil, nil
	}

	return client, googlesheets.NewTemplateService(client, cfg.TemplateSpreadsheetID)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
