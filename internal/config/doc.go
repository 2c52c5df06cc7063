// Package config defines the format-agnostic descriptor model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` keeps every value as an unevaluated hcl.Expression; it is
// the single input of the `resolver` package. Concrete loaders for HCL and
// YAML live in separate packages.
package config
