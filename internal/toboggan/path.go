package toboggan

import (
	"github.com/specialistvlad/toboggan/internal/terrain"
)

// Path is the ordered list of squares visited on one run, one per row.
type Path []terrain.Point

// BuildPath returns the points visited from the top-left corner down to the
// last row the slope reaches. It panics on a slope that fails Validate.
func BuildPath(grid *terrain.Grid, slope Slope) Path {
	if err := slope.Validate(); err != nil {
		panic(err)
	}

	height, width := grid.Height(), grid.Width()
	path := make(Path, 0, (height+slope.Down-1)/slope.Down)
	// Reducing the step first keeps col+step from overflowing int.
	step := slope.Right % width
	col := 0
	for row := 0; row < height; row += slope.Down {
		path = append(path, terrain.Point{Row: row, Col: col})
		col = (col + step) % width
	}
	return path
}

// CountTrees returns how many trees lie on the slope's path.
func CountTrees(grid *terrain.Grid, slope Slope) int {
	trees := 0
	for _, p := range BuildPath(grid, slope) {
		if grid.At(p) == terrain.Tree {
			trees++
		}
	}
	return trees
}
