// Package config defines the format-agnostic slope table model and the
// Loader interface that slope file formats implement.
//
// Concrete loaders live in separate packages: `hcl` for .hcl files and
// `yamlconf` for .yaml/.yml files.
package config
