package terrain

import (
	"bytes"
	"context"

	"github.com/specialistvlad/toboggan/internal/ctxlog"
)

const lineTerminator = '\n'

type parseOptions struct {
	strict bool
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithStrict makes Parse reject input whose length is not a whole number of
// rows. Without it, a trailing partial row is dropped.
func WithStrict() ParseOption {
	return func(o *parseOptions) { o.strict = true }
}

// ParseString is Parse for text already held as a string.
func ParseString(ctx context.Context, text string, opts ...ParseOption) (*Grid, error) {
	return Parse(ctx, []byte(text), opts...)
}

// Parse builds a Grid from its textual form. The first newline fixes the
// width; the height is how many width+1 byte rows fit in the input.
func Parse(ctx context.Context, data []byte, opts ...ParseOption) (*Grid, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx)

	width := bytes.IndexByte(data, lineTerminator)
	if width < 0 {
		return nil, &ParseError{Kind: MissingLineTerminator, Offset: len(data), Row: -1, Col: -1}
	}
	if width == 0 {
		return nil, &ParseError{Kind: EmptyRow, Offset: 0, Row: 0, Col: -1}
	}
	stride := width + 1
	height := len(data) / stride

	logger.Debug("Parsing grid.", "width", width, "height", height, "len", len(data))

	if rem := len(data) % stride; rem != 0 {
		if o.strict {
			return nil, &ParseError{Kind: TrailingData, Offset: height * stride, Row: -1, Col: -1}
		}
		logger.Debug("Dropping trailing partial row.", "bytes", rem)
	}

	grid := New(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			offset := row*stride + col
			if offset >= len(data) {
				return nil, &ParseError{Kind: InvalidIndexing, Offset: offset, Row: row, Col: col}
			}
			square, ok := SquareFromByte(data[offset])
			if !ok {
				return nil, &ParseError{Kind: InvalidCharacter, Offset: offset, Row: row, Col: col, Byte: data[offset]}
			}
			grid.Set(row, col, square)
		}
	}

	return grid, nil
}
