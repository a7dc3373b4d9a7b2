package toboggan

import "fmt"

// Slope is how far the toboggan moves on every step.
type Slope struct {
	Right int
	Down  int
}

// DefaultSlopes is the slope table evaluated when no slope file is given.
var DefaultSlopes = []Slope{
	{Right: 1, Down: 1},
	{Right: 3, Down: 1},
	{Right: 5, Down: 1},
	{Right: 7, Down: 1},
	{Right: 1, Down: 2},
}

// Validate reports whether the slope can be walked. Down must move at least
// one row per step or the walk would never reach the bottom.
func (s Slope) Validate() error {
	if s.Down < 1 {
		return fmt.Errorf("slope %s: down must be at least 1", s)
	}
	if s.Right < 0 {
		return fmt.Errorf("slope %s: right must not be negative", s)
	}
	return nil
}

func (s Slope) String() string {
	return fmt.Sprintf("right %d, down %d", s.Right, s.Down)
}
