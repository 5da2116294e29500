package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/botreport/pkg/budget"
	"github.com/ccollicutt/botreport/pkg/output"
)

// NewBudgetsCommand creates the budgets command.
func NewBudgetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "Show the expected duration for each bot size",
		Long: `Show the expected duration for each bot size.

A transaction is reported with "Yes" when its elapsed time is strictly
greater than the budget for its bot size.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.WriteBudgets(cmd.OutOrStdout(), budget.Default())
		},
	}
}
