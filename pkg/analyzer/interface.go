package analyzer

import (
	"context"

	"github.com/ccollicutt/botreport/pkg/parser"
)

// Reporter receives the outcome of every input line, in input order.
type Reporter interface {
	// Report handles a transaction that was parsed and evaluated.
	Report(ctx context.Context, result *Result) error

	// Skip handles a line that was rejected. reason is a *parser.ParseError
	// or a *parser.FormatError.
	Skip(ctx context.Context, line *parser.LogLine, reason error) error
}
