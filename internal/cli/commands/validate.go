package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/botreport/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a botreport configuration file without reading any transactions.

Checks:
  - YAML syntax
  - Field types and ranges
  - Environment overrides
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Input:         %s\n", cfg.Input)
	fmt.Fprintf(out, "  Max line size: %d bytes\n", cfg.MaxLineSize)

	// Input existence is a warning only; the log may be written later.
	if cfg.Input == config.StdinInput {
		return nil
	}
	info, err := os.Stat(cfg.Input)
	switch {
	case err != nil:
		fmt.Fprintf(out, "\nWarning: Input file not readable: %v\n", err)
	case info.IsDir():
		fmt.Fprintf(out, "\nWarning: Input is a directory: %s\n", cfg.Input)
	}

	return nil
}
