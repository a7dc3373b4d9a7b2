package terrain

import (
	"bytes"
	"fmt"
	"io"
)

// Point is a (row, col) coordinate on a grid.
type Point struct {
	Row int
	Col int
}

// Grid is a fixed-size rectangle of squares.
type Grid struct {
	squares []Square
	width   int
	height  int
}

// New allocates a width x height grid with every square Open.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("terrain: negative grid size %dx%d", width, height))
	}
	return &Grid{
		squares: make([]Square, width*height),
		width:   width,
		height:  height,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Get returns the square at (row, col). It panics when the coordinate is
// outside the grid.
func (g *Grid) Get(row, col int) Square {
	return g.squares[g.index(row, col)]
}

// Set overwrites the square at (row, col). Only the parser calls it.
func (g *Grid) Set(row, col int, s Square) {
	g.squares[g.index(row, col)] = s
}

// At is Get for a Point.
func (g *Grid) At(p Point) Square {
	return g.Get(p.Row, p.Col)
}

// Count returns how many squares of the given kind the grid holds.
func (g *Grid) Count(s Square) int {
	n := 0
	for _, sq := range g.squares {
		if sq == s {
			n++
		}
	}
	return n
}

func (g *Grid) index(row, col int) int {
	// A bad column would otherwise silently land on the next row.
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("terrain: (%d, %d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return row*g.width + col
}

// WriteTo renders the grid in its textual form.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	line := make([]byte, g.width+1)
	line[g.width] = '\n'

	var total int64
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			line[col] = g.Get(row, col).Byte()
		}
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the grid exactly as it would appear in an input file.
func (g *Grid) String() string {
	var buf bytes.Buffer
	buf.Grow(g.height * (g.width + 1))
	_, _ = g.WriteTo(&buf)
	return buf.String()
}
