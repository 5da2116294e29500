package parser

import (
	"regexp"
	"strconv"

	"github.com/ccollicutt/botreport/pkg/budget"
)

// transactionPattern matches
//
//	<id> <sep> <start> <sep> <end> <site> <bot size>
//
// anywhere in a line. Separators are single non-space characters.
var transactionPattern = regexp.MustCompile(
	`(?i)(\d+)\s+\S\s+` + // id
		`(\d+/\d+/\d+:\d+:\d\d)\s+\S\s+` + // start
		`(\d+/\d+/\d+:\d+:\d\d)\s+` + // end
		`(.*?)\s+` + // site
		`(small|medium|large|xtralarge|ultimate)\b`, // bot size
)

// LineParser extracts transactions from log lines.
type LineParser struct {
	pattern *regexp.Regexp
}

// NewLineParser creates a parser for the transaction line format.
func NewLineParser() *LineParser {
	return &LineParser{pattern: transactionPattern}
}

// Parse extracts a transaction from line.
// Returns a *ParseError if the line does not match the transaction format.
// Timestamps are captured as text and not validated here.
func (p *LineParser) Parse(line *LogLine) (*Transaction, error) {
	m := p.pattern.FindStringSubmatch(line.Content)
	if m == nil {
		return nil, &ParseError{Line: line.Content}
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, &ParseError{Line: line.Content, Err: err}
	}

	size, err := budget.ParseBotSize(m[5])
	if err != nil {
		return nil, &ParseError{Line: line.Content, Err: err}
	}

	return &Transaction{
		ID:      id,
		Start:   m[2],
		End:     m[3],
		Site:    m[4],
		BotSize: size,
		Raw:     line.Content,
		LineNum: line.LineNum,
	}, nil
}
