package analyzer

import (
	"fmt"

	"github.com/ccollicutt/botreport/pkg/budget"
	"github.com/ccollicutt/botreport/pkg/parser"
)

// Evaluator compares transaction durations with a budget table.
type Evaluator struct {
	budgets *budget.Table
}

// NewEvaluator creates an evaluator using budgets.
// A nil table means budget.Default().
func NewEvaluator(budgets *budget.Table) *Evaluator {
	if budgets == nil {
		budgets = budget.Default()
	}
	return &Evaluator{budgets: budgets}
}

// Evaluate parses the transaction's timestamps and compares the elapsed time
// with the budget for its bot size.
// Returns a *parser.FormatError if either timestamp is invalid; the start
// timestamp is checked first.
func (e *Evaluator) Evaluate(tx *parser.Transaction) (*Result, error) {
	start, err := parser.ParseTimestamp(tx.Start)
	if err != nil {
		return nil, err
	}

	end, err := parser.ParseTimestamp(tx.End)
	if err != nil {
		return nil, err
	}

	limit, ok := e.budgets.Budget(tx.BotSize)
	if !ok {
		return nil, fmt.Errorf("no budget for bot size %q", tx.BotSize)
	}

	elapsed := end.Sub(start)

	return &Result{
		Transaction: tx,
		StartTime:   start,
		EndTime:     end,
		Elapsed:     elapsed,
		Budget:      limit,
		Exceeded:    elapsed > limit,
	}, nil
}
