package toboggan

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/specialistvlad/toboggan/internal/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleMap = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func exampleGrid(t *testing.T) *terrain.Grid {
	t.Helper()
	grid, err := terrain.ParseString(context.Background(), exampleMap)
	require.NoError(t, err)
	return grid
}

func TestBuildPath_RightThreeDownOne(t *testing.T) {
	t.Parallel()

	actual := BuildPath(exampleGrid(t), Slope{Right: 3, Down: 1})

	expected := Path{
		{Row: 0, Col: 0},
		{Row: 1, Col: 3},
		{Row: 2, Col: 6},
		{Row: 3, Col: 9},
		{Row: 4, Col: 1},
		{Row: 5, Col: 4},
		{Row: 6, Col: 7},
		{Row: 7, Col: 10},
		{Row: 8, Col: 2},
		{Row: 9, Col: 5},
		{Row: 10, Col: 8},
	}
	assert.Equal(t, expected, actual)
}

func TestBuildPath_StepDoesNotDivideHeight(t *testing.T) {
	t.Parallel()

	actual := BuildPath(exampleGrid(t), Slope{Right: 2, Down: 3})

	assert.Equal(t, Path{
		{Row: 0, Col: 0},
		{Row: 3, Col: 2},
		{Row: 6, Col: 4},
		{Row: 9, Col: 6},
	}, actual)
}

func TestBuildPath_Shape(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		width := 1 + rng.Intn(20)
		height := 1 + rng.Intn(40)
		slope := Slope{Right: rng.Intn(30), Down: 1 + rng.Intn(5)}
		grid := randomGrid(rng, width, height)

		path := BuildPath(grid, slope)

		wantLen := int(math.Ceil(float64(height) / float64(slope.Down)))
		require.Len(t, path, wantLen, "grid %dx%d slope %s", width, height, slope)
		require.Equal(t, terrain.Point{Row: 0, Col: 0}, path[0])
		for j, p := range path {
			require.Equal(t, j*slope.Down, p.Row)
			require.Equal(t, (slope.Right*j)%width, p.Col)
		}

		trees := CountTrees(grid, slope)
		require.GreaterOrEqual(t, trees, 0)
		require.LessOrEqual(t, trees, len(path))
	}
}

func TestBuildPath_HugeRightStep(t *testing.T) {
	t.Parallel()

	grid := exampleGrid(t)
	slope := Slope{Right: math.MaxInt, Down: 1}

	path := BuildPath(grid, slope)

	require.Len(t, path, grid.Height())
	step := math.MaxInt % grid.Width()
	for i, p := range path {
		require.Equal(t, (step*i)%grid.Width(), p.Col, "point %d", i)
	}
	trees := CountTrees(grid, slope)
	assert.GreaterOrEqual(t, trees, 0)
	assert.LessOrEqual(t, trees, len(path))
}

func TestBuildPath_InvalidSlopePanics(t *testing.T) {
	t.Parallel()

	grid := exampleGrid(t)

	assert.Panics(t, func() { BuildPath(grid, Slope{Right: 1, Down: 0}) })
	assert.Panics(t, func() { BuildPath(grid, Slope{Right: -1, Down: 1}) })
}

func TestCountTrees_ExampleMap(t *testing.T) {
	t.Parallel()

	grid := exampleGrid(t)

	testCases := []struct {
		slope Slope
		trees int
	}{
		{slope: Slope{Right: 1, Down: 1}, trees: 2},
		{slope: Slope{Right: 3, Down: 1}, trees: 7},
		{slope: Slope{Right: 5, Down: 1}, trees: 3},
		{slope: Slope{Right: 7, Down: 1}, trees: 4},
		{slope: Slope{Right: 1, Down: 2}, trees: 2},
		{slope: Slope{Right: 0, Down: 1}, trees: 3},
		{slope: Slope{Right: 11, Down: 1}, trees: 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.slope.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.trees, CountTrees(grid, tc.slope))
		})
	}
}

func TestSurvey_DefaultSlopes(t *testing.T) {
	t.Parallel()

	results, err := Survey(context.Background(), exampleGrid(t), RunsFor(DefaultSlopes))
	require.NoError(t, err)

	trees := make([]int, len(results))
	for i, r := range results {
		assert.Equal(t, DefaultSlopes[i], r.Slope)
		trees[i] = r.Trees
	}
	assert.Equal(t, []int{2, 7, 3, 4, 2}, trees)

	product, err := Product(results)
	require.NoError(t, err)
	assert.Equal(t, uint64(336), product)
}

func TestSurvey_InvalidSlope(t *testing.T) {
	t.Parallel()

	runs := []Run{
		{Name: "fine", Slope: Slope{Right: 3, Down: 1}},
		{Name: "flat", Slope: Slope{Right: 3, Down: 0}},
	}

	results, err := Survey(context.Background(), exampleGrid(t), runs)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "run 1")
	assert.Contains(t, err.Error(), "down must be at least 1")
}

func TestSurvey_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Survey(ctx, exampleGrid(t), RunsFor(DefaultSlopes))

	require.ErrorIs(t, err, context.Canceled)
}

func TestProduct(t *testing.T) {
	t.Parallel()

	product, err := Product(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), product)

	product, err = Product([]Result{{Trees: 4}, {Trees: 0}, {Trees: 9}})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), product)

	huge := []Result{{Trees: math.MaxInt32}, {Trees: math.MaxInt32}, {Trees: math.MaxInt32}}
	_, err = Product(huge)
	require.ErrorIs(t, err, ErrProductOverflow)
}

func TestSlope_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Slope{Right: 0, Down: 1}.Validate())
	assert.NoError(t, Slope{Right: 100, Down: 7}.Validate())
	assert.Error(t, Slope{Right: 1, Down: 0}.Validate())
	assert.Error(t, Slope{Right: 1, Down: -2}.Validate())
	assert.Error(t, Slope{Right: -3, Down: 1}.Validate())
}

func randomGrid(rng *rand.Rand, width, height int) *terrain.Grid {
	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if rng.Intn(3) == 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	grid, err := terrain.ParseString(context.Background(), sb.String())
	if err != nil {
		panic(err)
	}
	return grid
}
