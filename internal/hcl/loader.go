package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/toboggan/internal/config"
	"github.com/specialistvlad/toboggan/internal/ctxlog"
	"github.com/specialistvlad/toboggan/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load reads every slope block from the file at path, or from all .hcl
// files under it when path is a directory. Files load in lexical order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL slopes.", "path", path)

	files, err := fsutil.FindFiles(path, l.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to find slope files in %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		defs, err := l.loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Slope file decoded.", "file", file, "slopes", len(defs))
		model.Slopes = append(model.Slopes, defs...)
	}

	return model, nil
}

func (l *Loader) loadFile(parser *hclparse.Parser, file string) ([]*config.SlopeDef, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var parsed slopeFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	defs := make([]*config.SlopeDef, 0, len(parsed.Slopes))
	for _, b := range parsed.Slopes {
		def, err := translateSlope(b, file)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// translateSlope converts the HCL-specific slope block into the agnostic model.
func translateSlope(b *slopeBlock, file string) (*config.SlopeDef, error) {
	if b.Right == nil {
		return nil, fmt.Errorf("slope %q in %s: missing required attribute \"right\"", b.Name, file)
	}
	right, err := evalInt(b.Right.Expr, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("slope %q in %s: invalid right: %w", b.Name, file, err)
	}
	down, err := evalInt(b.Down, nil, &defaultDown)
	if err != nil {
		return nil, fmt.Errorf("slope %q in %s: invalid down: %w", b.Name, file, err)
	}
	return &config.SlopeDef{
		Name:   b.Name,
		Right:  right,
		Down:   down,
		Source: file,
	}, nil
}
