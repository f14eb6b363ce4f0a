package main

import (
	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// migrateCmd usa a mesma configuração de ambiente da API, não o arquivo YAML
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações do banco de dados",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return err
		}

		logrus.Info("Banco de dados atualizado")
		return nil
	},
}
