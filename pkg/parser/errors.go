package parser

import "fmt"

// ParseError reports a line that does not have the shape of a transaction.
// It is recoverable: the line is skipped and processing continues.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return "Problem parsing line, skipping: " + e.Line
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a timestamp that matched the line shape but is not a
// valid date and time. It is recoverable: the line is skipped.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return "Unexpected date format: " + e.Value
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// InputError reports that the transaction log could not be opened or read.
// It ends the run.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Problem reading from %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
