// Package analyzer evaluates bot transactions against the expected duration
// for their bot size.
package analyzer

import (
	"time"

	"github.com/ccollicutt/botreport/pkg/parser"
)

// Outcome values reported for each transaction.
const (
	OutcomeExceeded = "Yes"
	OutcomeWithin   = "No"
)

// Result is the evaluation of a single transaction.
type Result struct {
	// Transaction is the parsed transaction.
	Transaction *parser.Transaction

	// StartTime and EndTime are the parsed timestamps.
	StartTime time.Time
	EndTime   time.Time

	// Elapsed is EndTime - StartTime. It is negative when the transaction
	// ended before it started.
	Elapsed time.Duration

	// Budget is the expected duration for the transaction's bot size.
	Budget time.Duration

	// Exceeded is true when Elapsed is strictly greater than Budget.
	Exceeded bool
}

// Outcome returns "Yes" if the transaction exceeded its budget, "No" otherwise.
func (r *Result) Outcome() string {
	if r.Exceeded {
		return OutcomeExceeded
	}
	return OutcomeWithin
}
