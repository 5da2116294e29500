// Package parser reads transaction logs and extracts transaction records from them.
package parser

import "github.com/ccollicutt/botreport/pkg/budget"

// LogLine is a single raw line read from a transaction log.
type LogLine struct {
	// Content is the line text without its line terminator.
	Content string

	// Source is the file path (or stream name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Transaction is one bot transaction extracted from a log line.
type Transaction struct {
	// ID is the transaction identifier.
	ID int64

	// Start and End are the timestamps as written in the log.
	// They are parsed separately with ParseTimestamp.
	Start string
	End   string

	// Site is the target site text.
	Site string

	// BotSize is the canonical bot size category.
	BotSize budget.BotSize

	// Raw is the original line the transaction was parsed from.
	Raw string

	// LineNum is the 1-based line number of Raw in its source.
	LineNum int
}
