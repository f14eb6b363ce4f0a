package main

import (
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dryRunFlag bool
	applyFlag  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calcula as recomendações e aplica os novos orçamentos",
	Long: `Lê desempenho e campanhas, gera uma recomendação por campanha da planilha
e imprime o resultado em JSON.

Sem --apply (ou dry_run: false no arquivo) nenhum orçamento é alterado.
A integração com dry_run: true continua simulando mesmo com --apply.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "apenas simula as alterações")
	runCmd.Flags().BoolVar(&applyFlag, "apply", false, "aplica as alterações na plataforma")
}

func runOptimization(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	dryRun, err := s.ResolveDryRun(dryRunFlag, applyFlag)
	if err != nil {
		return err
	}

	sources := buildFactory(cmd.Context(), s).Build(s.OptimizationConfig, dryRun)

	result := optimize(cmd, sources, s.OptimizationConfig, dryRun || s.MetaPlatform().DryRun)

	return printJSON(cmd, result)
}

func optimize(cmd *cobra.Command, sources connector.Sources, cfg domain.OptimizationConfig, dryRun bool) domain.OptimizationResult {
	logger := logrus.WithFields(logrus.Fields{
		"platform": sources.Campaigns.Platform(),
		"dry_run":  dryRun,
	})

	logger.Info("Lendo desempenho e campanhas")
	snapshot := optimizing.Collect(cmd.Context(), sources)

	recommendations := optimizing.Reconcile(snapshot.Performance, snapshot.Campaigns, optimizing.NewEngine(cfg.BudgetRules))
	changes := optimizing.ApplyRecommendations(cmd.Context(), sources.Campaigns, cfg.OrganizationID, recommendations, dryRun)

	logger.Infof("Execução concluída: %d recomendações, %d alterações", len(recommendations), len(changes))

	return domain.OptimizationResult{
		DryRun:          dryRun,
		Recommendations: recommendations,
		Changes:         changes,
	}
}
