package pattern

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is returned for format operations that are not implemented.
	ErrUnsupported = errors.New("unsupported format operation")
	// ErrNoHeader is returned when an RLE file has no header line.
	ErrNoHeader = errors.New("no header line found")
)

// ParseError describes a grammar violation in a pattern file.
type ParseError struct {
	Format Format
	// Line is 1-based; 0 means the error is not tied to a line.
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.Format, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(f Format, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Format: f, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func unexpectedChar(f Format, line int, ch rune, expected string) *ParseError {
	return newParseError(f, line, "unexpected character %q, expected %s", ch, expected)
}
