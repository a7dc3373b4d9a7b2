package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/toboggan/internal/toboggan"
)

// ErrNoSlopes is returned when a slope file defines nothing to walk.
var ErrNoSlopes = errors.New("no slopes defined")

// SlopeDef is one entry of the slope table.
type SlopeDef struct {
	Name   string
	Right  int
	Down   int
	Source string // file the slope was read from
}

// Slope converts the definition to the walker's type.
func (d *SlopeDef) Slope() toboggan.Slope {
	return toboggan.Slope{Right: d.Right, Down: d.Down}
}

// Model is the slope table in the order it should be evaluated.
type Model struct {
	Slopes []*SlopeDef
}

// Default returns the built-in five-slope table.
func Default() *Model {
	m := &Model{}
	for _, s := range toboggan.DefaultSlopes {
		m.Slopes = append(m.Slopes, &SlopeDef{Right: s.Right, Down: s.Down, Source: "builtin"})
	}
	return m
}

// Validate checks that the table is non-empty, every slope is walkable and
// no name is used twice.
func (m *Model) Validate() error {
	if m == nil || len(m.Slopes) == 0 {
		return ErrNoSlopes
	}
	seen := make(map[string]string, len(m.Slopes))
	for i, d := range m.Slopes {
		if err := d.Slope().Validate(); err != nil {
			return fmt.Errorf("slope %d (%s) in %s: %w", i, d.Name, d.Source, err)
		}
		if d.Name == "" {
			continue
		}
		if prev, dup := seen[d.Name]; dup {
			return fmt.Errorf("duplicate slope name %q in %s, first defined in %s", d.Name, d.Source, prev)
		}
		seen[d.Name] = d.Source
	}
	return nil
}

// Runs converts the table into survey runs.
func (m *Model) Runs() []toboggan.Run {
	runs := make([]toboggan.Run, len(m.Slopes))
	for i, d := range m.Slopes {
		runs[i] = toboggan.Run{Name: d.Name, Slope: d.Slope()}
	}
	return runs
}
