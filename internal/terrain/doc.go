/*
Package terrain models the toboggan map: a rectangular grid of squares,
each either open snow or a tree.

The textual form is one line per row, `.` for open and `#` for a tree, with
every row terminated by a newline. Parse turns that text into a Grid and
Grid.String turns it back, byte for byte.

Cells live in a single slice addressed as row*width+col rather than in
per-row slices.
*/
package terrain
