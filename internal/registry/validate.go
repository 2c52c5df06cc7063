package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
)

// ValidateRegistry checks that the registered plugins are coherent with each
// other and with the names the resolver reserves for its builtins.
func (r *Registry) ValidateRegistry(ctx context.Context, reserved ...string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	reservedSet := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		reservedSet[name] = struct{}{}
	}

	for _, id := range r.IDs() {
		p := r.Plugins[id]
		if p.Namespace != "" {
			if _, ok := reservedSet[p.Namespace]; ok {
				errs = append(errs, fmt.Sprintf("plugin '%s': namespace '%s' is reserved", id, p.Namespace))
			}
			if p.Values == nil {
				errs = append(errs, fmt.Sprintf("plugin '%s': declares namespace '%s' but has no values function", id, p.Namespace))
			}
		} else if p.Values != nil {
			errs = append(errs, fmt.Sprintf("plugin '%s': has a values function but no namespace to expose it under", id))
		}
		if p.Extension != "" {
			if _, ok := reservedSet[p.Extension]; ok {
				errs = append(errs, fmt.Sprintf("plugin '%s': extension block '%s' is reserved", id, p.Extension))
			}
		}
		logger.Debug("Plugin validated.", "plugin", id, "namespace", p.Namespace, "extension", p.Extension)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
