package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/toboggan/internal/ctxlog"
	"github.com/specialistvlad/toboggan/internal/terrain"
	"github.com/specialistvlad/toboggan/internal/toboggan"
)

// Run reads the map, surveys every slope and writes the report. Any failure
// ends the run; there is no partial report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "input", a.config.InputPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	data, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", a.config.InputPath, err)
	}

	var opts []terrain.ParseOption
	if a.config.Strict {
		opts = append(opts, terrain.WithStrict())
	}
	grid, err := terrain.Parse(ctx, data, opts...)
	if err != nil {
		return fmt.Errorf("failed to parse map %s: %w", a.config.InputPath, err)
	}
	logger.Info("Map loaded.", "width", grid.Width(), "height", grid.Height(), "trees", grid.Count(terrain.Tree))

	results, err := toboggan.Survey(ctx, grid, a.slopes.Runs())
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}

	product, err := toboggan.Product(results)
	if err != nil {
		return err
	}

	if err := writeReport(a.outW, results, product); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("App.Run method finished.", "slopes", len(results), "product", product)
	return nil
}
