// Package toboggan walks slopes down a terrain.Grid and counts the trees
// hit on the way. The map repeats endlessly to the right, so columns wrap
// modulo the grid width.
package toboggan
