// Package cli provides the command-line interface for botreport.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/botreport/internal/cli/commands"
	"github.com/ccollicutt/botreport/pkg/parser"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	return exitCode(rootCmd.Execute(), os.Stderr)
}

// exitCode prints err, if any, and maps it to the process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return commands.ExitCode
	}

	// Read failures have a fixed diagnostic format.
	var inputErr *parser.InputError
	if errors.As(err, &inputErr) {
		_, _ = fmt.Fprintln(stderr, inputErr)
		return 2
	}

	// Print error to stderr (SilenceErrors prevents Cobra from doing this)
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 2 // Configuration or runtime error
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.ReportOptions{}

	rootCmd := &cobra.Command{
		Use:   "botreport [transactions-file]",
		Short: "Report bot transactions that took longer than expected",
		Long: `botreport reads a log of bot transactions and reports, for each one, whether
it took longer than the expected duration for its bot size.

Each input line looks like:
  1 : 11/1/2016:12:00 : 11/1/2016:13:01 google.com MEDIUM

and is echoed to standard output followed by " - Yes" if the transaction
exceeded its budget or " - No" otherwise. Lines that cannot be parsed are
reported on standard error and skipped.

The transactions file defaults to transactions.txt. Use "-" to read standard
input.

Exit codes:
  0 - All lines read (some may have been skipped)
  2 - The transactions file could not be read, or a configuration error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunReport(cmd, args, opts)
		},
	}

	commands.AddReportFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewBudgetsCommand())
	rootCmd.AddCommand(commands.NewExplainCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
