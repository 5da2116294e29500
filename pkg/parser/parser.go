package parser

import (
	"bufio"
	"context"
	"io"
	"os"
)

// DefaultMaxLineSize is the longest line a FileSource accepts unless
// configured otherwise. Longer lines end the run with a read error.
const DefaultMaxLineSize = 1024 * 1024

// FileSource implements LineSource for a transaction log file or stream.
// The file is opened on the first call to Next.
type FileSource struct {
	path        string
	maxLineSize int

	reader  io.ReadCloser
	scanner *bufio.Scanner
	lineNum int
	closed  bool
}

// Option configures a FileSource.
type Option func(*FileSource)

// WithMaxLineSize sets the longest accepted line in bytes.
func WithMaxLineSize(n int) Option {
	return func(s *FileSource) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// NewFileSource creates a LineSource that reads the file at path.
func NewFileSource(path string, opts ...Option) *FileSource {
	s := &FileSource{
		path:        path,
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewReaderSource creates a LineSource that reads from r. name is used in
// LogLine.Source and in error messages. Closing the source does not close r.
func NewReaderSource(name string, r io.Reader, opts ...Option) *FileSource {
	s := NewFileSource(name, opts...)
	s.reader = io.NopCloser(r)
	return s
}

// Next returns the next line of the log.
// Returns io.EOF at the end of input and *InputError if the log cannot be
// opened or read.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.closed {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner.Scan() {
		s.lineNum++
		return &LogLine{
			Content: s.scanner.Text(),
			Source:  s.path,
			LineNum: s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, &InputError{Path: s.path, Err: err}
	}

	return nil, io.EOF
}

// Close releases the underlying file. It is safe to call more than once.
func (s *FileSource) Close() error {
	s.closed = true
	s.scanner = nil
	if s.reader == nil {
		return nil
	}
	err := s.reader.Close()
	s.reader = nil
	return err
}

func (s *FileSource) open() error {
	if s.reader == nil {
		f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return &InputError{Path: s.path, Err: err}
		}
		s.reader = f
	}

	initial := 64 * 1024
	if s.maxLineSize < initial {
		initial = s.maxLineSize
	}

	s.scanner = bufio.NewScanner(s.reader)
	s.scanner.Buffer(make([]byte, 0, initial), s.maxLineSize)
	s.lineNum = 0

	return nil
}
