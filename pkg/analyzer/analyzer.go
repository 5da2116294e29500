package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/botreport/pkg/parser"
)

// Analyzer runs each line of a transaction log through the parser and the
// evaluator and hands the outcome to a Reporter.
type Analyzer struct {
	parser    *parser.LineParser
	evaluator *Evaluator
}

// NewAnalyzer creates an analyzer that evaluates with evaluator.
// A nil evaluator uses the default budget table.
func NewAnalyzer(evaluator *Evaluator) *Analyzer {
	if evaluator == nil {
		evaluator = NewEvaluator(nil)
	}
	return &Analyzer{
		parser:    parser.NewLineParser(),
		evaluator: evaluator,
	}
}

// Evaluate parses and evaluates a single line.
// Returns a *parser.ParseError or *parser.FormatError if the line is rejected.
func (a *Analyzer) Evaluate(line *parser.LogLine) (*Result, error) {
	tx, err := a.parser.Parse(line)
	if err != nil {
		return nil, err
	}
	return a.evaluator.Evaluate(tx)
}

// Analyze processes every line of source in order.
// Rejected lines go to reporter.Skip and do not stop the run. A read error
// from source, or an error from reporter, ends the run.
func (a *Analyzer) Analyze(ctx context.Context, source parser.LineSource, reporter Reporter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading transactions: %w", err)
		}

		result, err := a.Evaluate(line)
		if err != nil {
			if !isSkippable(err) {
				return fmt.Errorf("evaluating line %d: %w", line.LineNum, err)
			}
			if err := reporter.Skip(ctx, line, err); err != nil {
				return fmt.Errorf("reporting line %d: %w", line.LineNum, err)
			}
			continue
		}

		if err := reporter.Report(ctx, result); err != nil {
			return fmt.Errorf("reporting line %d: %w", line.LineNum, err)
		}
	}
}

// isSkippable reports whether err rejects a single line rather than the run.
func isSkippable(err error) bool {
	var parseErr *parser.ParseError
	var formatErr *parser.FormatError
	return errors.As(err, &parseErr) || errors.As(err, &formatErr)
}
