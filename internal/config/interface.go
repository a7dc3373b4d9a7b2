package config

import "context"

// Loader is the interface for a format-specific slope file loader.
type Loader interface {
	// Load reads the slope table from path, which may be a single file or a
	// directory the loader knows how to scan.
	Load(ctx context.Context, path string) (*Model, error)

	// Extensions lists the file extensions, with leading dot, this loader reads.
	Extensions() []string
}
