package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/botreport/pkg/analyzer"
	"github.com/ccollicutt/botreport/pkg/budget"
	"github.com/ccollicutt/botreport/pkg/config"
	"github.com/ccollicutt/botreport/pkg/output"
	"github.com/ccollicutt/botreport/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ReportOptions holds command-line options for the report run.
type ReportOptions struct {
	ConfigFile  string
	MaxLineSize int
}

// AddReportFlags registers the report flags on cmd.
func AddReportFlags(cmd *cobra.Command, opts *ReportOptions) {
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().IntVar(&opts.MaxLineSize, "max-line-size", 0, "Longest accepted input line in bytes (overrides config)")
}

// RunReport reads the transaction log and writes one annotated line per
// transaction to the command's output. Rejected lines are reported on the
// command's error output and skipped.
func RunReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if opts.MaxLineSize != 0 {
		cfg.MaxLineSize = opts.MaxLineSize
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	source := openSource(cmd, cfg)
	defer source.Close()

	a := analyzer.NewAnalyzer(analyzer.NewEvaluator(budget.Default()))
	reporter := output.NewTextReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	return a.Analyze(ctx, source, reporter)
}

// loadConfig loads the config file if one is given, otherwise the defaults
// with environment overrides.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.FromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func openSource(cmd *cobra.Command, cfg *config.Config) *parser.FileSource {
	if cfg.Input == config.StdinInput {
		return parser.NewReaderSource("stdin", cmd.InOrStdin(), parser.WithMaxLineSize(cfg.MaxLineSize))
	}
	return parser.NewFileSource(cfg.Input, parser.WithMaxLineSize(cfg.MaxLineSize))
}
