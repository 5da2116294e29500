package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/botreport/pkg/analyzer"
	"github.com/ccollicutt/botreport/pkg/budget"
	"github.com/ccollicutt/botreport/pkg/output"
	"github.com/ccollicutt/botreport/pkg/parser"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <line>",
		Short: "Show how a single transaction line is evaluated",
		Long: `Parse and evaluate a single transaction line and show every field.

Useful for finding out why a line is skipped or reported.

Exit codes:
  0 - Line was evaluated
  1 - Line was rejected

Example:
  botreport explain "1 : 11/1/2016:12:00 : 11/1/2016:13:01 google.com MEDIUM"`,
		Args: cobra.ExactArgs(1),
		RunE: runExplain,
	}
}

func runExplain(cmd *cobra.Command, args []string) error {
	a := analyzer.NewAnalyzer(analyzer.NewEvaluator(budget.Default()))

	result, err := a.Evaluate(&parser.LogLine{Content: args[0], Source: "argument", LineNum: 1})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		ExitCode = 1
		return nil
	}

	output.WriteExplanation(cmd.OutOrStdout(), result)
	return nil
}
