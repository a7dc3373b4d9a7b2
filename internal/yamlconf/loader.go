// Package yamlconf provides a config.Loader for YAML slope files:
//
//	slopes:
//	  - name: classic
//	    right: 3
//	    down: 1
//
// `down` defaults to 1. Unknown keys are rejected.
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/toboggan/internal/config"
	"github.com/specialistvlad/toboggan/internal/ctxlog"
	"github.com/specialistvlad/toboggan/internal/fsutil"
	"gopkg.in/yaml.v3"
)

type slopeFile struct {
	Slopes []slopeEntry `yaml:"slopes"`
}

type slopeEntry struct {
	Name  string `yaml:"name"`
	Right *int   `yaml:"right"`
	Down  *int   `yaml:"down"`
}

// Loader reads slope tables from YAML.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements config.Loader. A directory path loads every YAML file
// under it in lexical order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML slopes.", "path", path)

	files, err := fsutil.FindFiles(path, l.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to find slope files in %s: %w", path, err)
	}

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		defs, err := decode(data, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Slope file decoded.", "file", file, "slopes", len(defs))
		model.Slopes = append(model.Slopes, defs...)
	}
	return model, nil
}

func decode(data []byte, file string) ([]*config.SlopeDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var parsed slopeFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	defs := make([]*config.SlopeDef, 0, len(parsed.Slopes))
	for i, e := range parsed.Slopes {
		if e.Right == nil {
			return nil, fmt.Errorf("slope %d (%s) in %s: missing required key \"right\"", i, e.Name, file)
		}
		down := 1
		if e.Down != nil {
			down = *e.Down
		}
		defs = append(defs, &config.SlopeDef{
			Name:   e.Name,
			Right:  *e.Right,
			Down:   down,
			Source: file,
		})
	}
	return defs, nil
}
