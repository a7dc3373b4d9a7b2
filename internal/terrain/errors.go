package terrain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a grid could not be parsed.
type ErrorKind int

const (
	// MissingLineTerminator means the input has no newline at all, so the
	// row width cannot be known.
	MissingLineTerminator ErrorKind = iota + 1
	// InvalidIndexing means the input is shorter than its rectangular shape implies.
	InvalidIndexing
	// InvalidCharacter means a data position holds something other than '.' or '#'.
	InvalidCharacter
	// EmptyRow means the first line has no squares, which leaves the grid
	// without columns to walk.
	EmptyRow
	// TrailingData means bytes are left over after the last full row.
	// Only reported by strict parsing.
	TrailingData
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its Kind.
var (
	ErrMissingLineTerminator = errors.New("missing end-of-line")
	ErrInvalidIndexing       = errors.New("invalid indexing")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrEmptyRow              = errors.New("empty first line")
	ErrTrailingData          = errors.New("trailing data after last row")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case MissingLineTerminator:
		return ErrMissingLineTerminator
	case InvalidIndexing:
		return ErrInvalidIndexing
	case InvalidCharacter:
		return ErrInvalidCharacter
	case EmptyRow:
		return ErrEmptyRow
	case TrailingData:
		return ErrTrailingData
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports where and why the textual grid was rejected.
type ParseError struct {
	Kind   ErrorKind
	Offset int  // byte offset into the input
	Row    int  // -1 when the error is not tied to a cell
	Col    int  // -1 when the error is not tied to a cell
	Byte   byte // offending byte, set for InvalidCharacter
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid input: %s %q at row %d, col %d", e.Kind, e.Byte, e.Row, e.Col)
	case InvalidIndexing:
		return fmt.Sprintf("invalid input: %s at row %d, col %d (offset %d)", e.Kind, e.Row, e.Col, e.Offset)
	case TrailingData:
		return fmt.Sprintf("invalid input: %s at offset %d", e.Kind, e.Offset)
	default:
		return fmt.Sprintf("invalid input: %s", e.Kind)
	}
}

// Is lets errors.Is match a *ParseError against the Err* sentinels.
func (e *ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}
