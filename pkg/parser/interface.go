package parser

import (
	"context"
)

// LineSource provides an iterator over the lines of a transaction log.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	// Returns an *InputError if the source cannot be opened or read.
	Next(ctx context.Context) (*LogLine, error)

	// Close releases any resources held by the source.
	Close() error
}
