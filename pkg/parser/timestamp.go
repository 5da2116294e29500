package parser

import "time"

// TimestampLayout is the Go time layout of transaction timestamps:
// month/day/year:hour:minute, e.g. 11/1/2016:13:01.
const TimestampLayout = "1/2/2006:15:04"

// ParseTimestamp parses a transaction timestamp.
// Timestamps carry no zone; they are read as UTC wall-clock values so that the
// difference between two of them is the literal clock difference.
// Returns a *FormatError if value is not a valid timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, &FormatError{Value: value, Err: err}
	}
	return ts, nil
}
