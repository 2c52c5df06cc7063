package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/appdescriptor/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorPath   string // descriptor file or directory
	PluginValuesPath string // optional plugin value overrides

	Output          string
	LogFormat       string
	LogLevel        string
	FailOnRisk      bool
	LastVersionCode int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = render.FormatText
	}
	if !render.IsFormat(cfg.Output) {
		return nil, fmt.Errorf("invalid output %q: must be one of %s", cfg.Output, strings.Join(render.Formats, ", "))
	}
	if cfg.LastVersionCode < 0 {
		return nil, fmt.Errorf("invalid last version code %d: must not be negative", cfg.LastVersionCode)
	}
	return &cfg, nil
}
