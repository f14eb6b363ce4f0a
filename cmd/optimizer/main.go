package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/connector"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/googlesheets"
	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/metaclient"
	"github.com/lrlucasdurand-code/unify/pkg/log"
	"github.com/lrlucasdurand-code/unify/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "optimizer",
	Short: "Otimização de orçamentos de anúncios em linha de comando",
	Long: `Executa a otimização a partir de um arquivo de configuração YAML,
sem banco de dados e sem a API.

Subcomandos:
  run     - calcula as recomendações e, com --apply, altera os orçamentos
  status  - mostra a capacidade global (demanda implícita x limites)
  migrate - aplica as migrações do banco da API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "config", "c", "settings.yaml", "arquivo de configuração YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "nível de log (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd, statusCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// buildFactory monta os conectores reais; sem credenciais do Google a planilha degrada para dados vazios
func buildFactory(ctx context.Context, s *Settings) connector.Factory {
	var reader googlesheets.ValuesReader

	if s.GoogleSheets.SpreadsheetID != "" {
		client, err := googlesheets.NewClient(ctx, s.CredentialsFile)
		if err != nil {
			logrus.WithError(err).Warn("Google Sheets indisponível, seguindo sem planilha")
		} else {
			reader = client
		}
	}

	metaCfg := s.metaConfig()
	metaClient := metaclient.NewClient(metaCfg, &http.Client{Timeout: metaCfg.RequestTimeout})

	return connector.NewFactory(reader, metaClient, googlesheets.Ranges{
		Performance: s.GoogleSheets.RangeName,
		Resources:   s.ResourcesRange,
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
