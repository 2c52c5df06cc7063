package config

import (
	"context"
)

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Supports reports whether the loader understands the given file.
	Supports(path string) bool

	// Load reads a single descriptor file and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
