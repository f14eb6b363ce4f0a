package main

import (
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra a capacidade global diária e semanal",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(settingsPath)
		if err != nil {
			return err
		}

		sources := buildFactory(cmd.Context(), s).Build(s.OptimizationConfig, true)
		status := optimizing.Status(optimizing.Collect(cmd.Context(), sources), s.BudgetRules.CostPerLead)

		return printJSON(cmd, status)
	},
}
