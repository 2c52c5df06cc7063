package config

import (
	"fmt"
)

// Merge folds other into m. Plugins and dependencies append in order; the
// android block and each extension block may be declared by one file only.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	m.Files = append(m.Files, other.Files...)
	m.Plugins = append(m.Plugins, other.Plugins...)
	m.Dependencies = append(m.Dependencies, other.Dependencies...)

	if other.Android != nil {
		if m.Android != nil {
			return fmt.Errorf("duplicate android block at %s, first declared at %s", other.Android.DefRange, m.Android.DefRange)
		}
		m.Android = other.Android
	}

	if m.Extensions == nil {
		m.Extensions = make(map[string]*Extension)
	}
	for name, ext := range other.Extensions {
		if prev, ok := m.Extensions[name]; ok {
			return fmt.Errorf("duplicate %s block at %s, first declared at %s", name, ext.DefRange, prev.DefRange)
		}
		m.Extensions[name] = ext
	}
	return nil
}
