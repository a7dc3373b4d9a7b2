package terrain

// Square is the content of one grid cell.
type Square uint8

const (
	// Open is passable snow. It is the zero value.
	Open Square = iota
	// Tree is an obstacle the toboggan runs into.
	Tree
)

const (
	openByte = '.'
	treeByte = '#'
)

// SquareFromByte maps the textual form of a square back to its value.
func SquareFromByte(b byte) (Square, bool) {
	switch b {
	case openByte:
		return Open, true
	case treeByte:
		return Tree, true
	default:
		return Open, false
	}
}

// Byte returns the character used for the square in the textual grid.
func (s Square) Byte() byte {
	if s == Tree {
		return treeByte
	}
	return openByte
}

func (s Square) String() string {
	switch s {
	case Open:
		return "open"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}
