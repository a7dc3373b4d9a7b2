package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/toboggan/internal/config"
	"github.com/specialistvlad/toboggan/internal/ctxlog"
	"github.com/specialistvlad/toboggan/internal/fsutil"
	"github.com/specialistvlad/toboggan/internal/hcl"
	"github.com/specialistvlad/toboggan/internal/yamlconf"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	slopes *config.Model
}

// defaultLoaders returns the slope file formats understood out of the box.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlconf.NewLoader()}
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. When appConfig names a slope file it is loaded and validated
// here, so a bad slope table fails before the map is read.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	slopes := config.Default()
	if appConfig.SlopesPath != "" {
		var err error
		slopes, err = loadSlopes(ctx, appConfig.SlopesPath, loaders)
		if err != nil {
			return nil, fmt.Errorf("failed to load slopes: %w", err)
		}
	}
	if err := slopes.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slope table: %w", err)
	}
	logger.Debug("Slope table ready.", "count", len(slopes.Slopes), "source", slopeSource(appConfig))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		slopes: slopes,
	}, nil
}

// Slopes returns the slope table the app will survey. This is primarily for testing.
func (a *App) Slopes() *config.Model {
	return a.slopes
}

// loadSlopes picks the loader by file extension. A directory is handed to
// every loader in turn and the tables are concatenated in loader order.
func loadSlopes(ctx context.Context, path string, loaders []config.Loader) (*config.Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		for _, l := range loaders {
			if fsutil.HasExtension(path, l.Extensions()...) {
				return l.Load(ctx, path)
			}
		}
		return nil, fmt.Errorf("unsupported slope file %s", path)
	}

	merged := &config.Model{}
	for _, l := range loaders {
		m, err := l.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		merged.Slopes = append(merged.Slopes, m.Slopes...)
	}
	return merged, nil
}

func slopeSource(cfg *Config) string {
	if cfg.SlopesPath == "" {
		return "builtin"
	}
	return cfg.SlopesPath
}
