package descriptor

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// ConfigurationError reports a malformed or missing required field.
type ConfigurationError struct {
	Subject string
	Message string
	Range   *hcl.Range
}

func (e *ConfigurationError) Error() string {
	return withRange(e.Range, fmt.Sprintf("configuration error in %s: %s", e.Subject, e.Message))
}

// UnresolvedReferenceError reports a reference whose value cannot be found,
// e.g. an attribute the plugin does not supply or an unknown root name.
type UnresolvedReferenceError struct {
	Reference string
	Detail    string
	Range     *hcl.Range
}

func (e *UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("unresolved reference %q", e.Reference)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return withRange(e.Range, msg)
}

// MissingPluginError reports a reference or block owned by a known plugin
// that the descriptor does not apply.
type MissingPluginError struct {
	PluginID  string
	Reference string
	Range     *hcl.Range
}

func (e *MissingPluginError) Error() string {
	return withRange(e.Range, fmt.Sprintf("%s requires plugin %q, which is not applied", e.Reference, e.PluginID))
}

// DependencyConflictError reports one module declared with conflicting
// version constraints.
type DependencyConflictError struct {
	Module   string
	Versions []string
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("conflicting versions for %s: %s", e.Module, strings.Join(e.Versions, " vs "))
}

func withRange(rng *hcl.Range, msg string) string {
	if rng == nil || rng.Filename == "" {
		return msg
	}
	return rng.String() + ": " + msg
}
