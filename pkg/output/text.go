// Package output renders transaction reports and tables.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/botreport/pkg/analyzer"
	"github.com/ccollicutt/botreport/pkg/parser"
)

// TextReporter writes one annotated line per evaluated transaction to out and
// one diagnostic per rejected line to diag.
type TextReporter struct {
	out  io.Writer
	diag io.Writer
}

// NewTextReporter creates a reporter writing results to out and diagnostics to diag.
func NewTextReporter(out, diag io.Writer) *TextReporter {
	return &TextReporter{out: out, diag: diag}
}

// Report writes "<original line> - Yes|No".
func (r *TextReporter) Report(ctx context.Context, result *analyzer.Result) error {
	_, err := fmt.Fprintf(r.out, "%s - %s\n", result.Transaction.Raw, result.Outcome())
	return err
}

// Skip writes the rejection reason as a diagnostic line.
func (r *TextReporter) Skip(ctx context.Context, line *parser.LogLine, reason error) error {
	_, err := fmt.Fprintln(r.diag, reason)
	return err
}

var _ analyzer.Reporter = (*TextReporter)(nil)
