package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/toboggan/internal/cli"
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

func TestRun_ExampleMap(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	inputPath := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(inputPath, []byte(exampleMap), 0600))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"--log-level=warn", inputPath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, `Right 1, down 1: 2 trees
Right 3, down 1: 7 trees
Right 5, down 1: 3 trees
Right 7, down 1: 4 trees
Right 1, down 2: 2 trees
Product of trees encountered: 336
`, out.String())
	require.Empty(t, errOut.String())
}

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A slope file with a syntax error fails while the app is constructed.
	dir := t.TempDir()
	slopesPath := filepath.Join(dir, "slopes.hcl")
	require.NoError(t, os.WriteFile(slopesPath, []byte(`slope "broken" {`), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-slopes", slopesPath, filepath.Join(dir, "input")})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "startup failed")
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "input")})

	require.ErrorIs(t, err, os.ErrNotExist)
}
