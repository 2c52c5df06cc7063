package resolver

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// checkVersion accepts release-style versions such as "1.0", "18.3.0" or
// "27.0.12077973".
func checkVersion(v string) error {
	if strings.TrimSpace(v) != v || v == "" {
		return fmt.Errorf("malformed version %q", v)
	}
	if _, err := semver.NewVersion(v); err != nil {
		return fmt.Errorf("malformed version %q: %w", v, err)
	}
	return nil
}

// checkVersionConstraint accepts an exact version or a range constraint.
// Gradle's "1.+" dynamic notation is read as "1.x".
func checkVersionConstraint(v string) error {
	if checkVersion(v) == nil {
		return nil
	}
	c := v
	if strings.HasSuffix(c, "+") {
		c = strings.TrimSuffix(c, "+") + "x"
	}
	if _, err := semver.NewConstraint(c); err != nil {
		return fmt.Errorf("malformed version constraint %q: %w", v, err)
	}
	return nil
}
