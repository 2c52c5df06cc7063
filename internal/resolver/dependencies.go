package resolver

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
)

// declared is a single dependency as written, before flattening.
type declared struct {
	coord descriptor.DependencyCoordinate
	rng   hcl.Range
}

// resolveDependencies evaluates every configuration list, attaches BOM
// managed versions and flattens the result into unique coordinates.
func (r *resolver) resolveDependencies() {
	var all []declared
	for _, dep := range r.model.Dependencies {
		all = append(all, r.declaredIn(dep.Configuration, dep.Expr)...)
	}

	boms := make(map[string][]descriptor.DependencyCoordinate)
	for _, d := range all {
		if d.coord.Platform {
			boms[d.coord.Group] = appendUniqueModule(boms[d.coord.Group], d.coord)
		}
	}

	type merged struct {
		coord    descriptor.DependencyCoordinate
		configs  map[string]bool
		versions map[string]bool
	}
	byKey := make(map[string]*merged)
	var keys []string

	for _, d := range all {
		c := d.coord
		if !c.Platform && c.Version == "" {
			managers := boms[c.Group]
			switch len(managers) {
			case 0:
				rng := d.rng
				r.fail(&descriptor.ConfigurationError{
					Subject: "dependencies." + c.Configuration,
					Message: fmt.Sprintf("%s has no version and no platform BOM manages group %q", c.Module(), c.Group),
					Range:   &rng,
				})
				continue
			case 1:
				c.ManagedBy = managers[0].String()
			default:
				names := make([]string, len(managers))
				for i, m := range managers {
					names[i] = m.String()
				}
				rng := d.rng
				r.fail(&descriptor.ConfigurationError{
					Subject: "dependencies." + c.Configuration,
					Message: fmt.Sprintf("%s has no version and is managed by more than one BOM: %s", c.Module(), strings.Join(names, ", ")),
					Range:   &rng,
				})
				continue
			}
		}

		key := c.Module()
		if c.Platform {
			key = "platform:" + key
		}
		m, ok := byKey[key]
		if !ok {
			m = &merged{coord: c, configs: map[string]bool{}, versions: map[string]bool{}}
			byKey[key] = m
			keys = append(keys, key)
		}
		m.configs[c.Configuration] = true
		m.versions[versionLabel(c)] = true
	}

	sort.Strings(keys)
	for _, key := range keys {
		m := byKey[key]
		if len(m.versions) > 1 {
			r.fail(&descriptor.DependencyConflictError{Module: m.coord.Module(), Versions: sortedKeys(m.versions)})
			continue
		}
		m.coord.Configuration = strings.Join(sortedKeys(m.configs), ",")
		r.out.Dependencies = append(r.out.Dependencies, m.coord)
	}

	sort.SliceStable(r.out.Dependencies, func(i, j int) bool {
		a, b := r.out.Dependencies[i], r.out.Dependencies[j]
		if a.Platform != b.Platform {
			return a.Platform
		}
		return a.Module() < b.Module()
	})
	r.logger.Debug("Dependencies flattened.", "declared", len(all), "unique", len(r.out.Dependencies))
}

// declaredIn evaluates one configuration list.
func (r *resolver) declaredIn(configuration string, expr hcl.Expression) []declared {
	subject := "dependencies." + configuration
	val, ok := r.eval(expr, subject)
	if !ok {
		return nil
	}
	rng := expr.Range()
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("must be a list of coordinates, got %s", ty.FriendlyName()), Range: &rng})
		return nil
	}

	var out []declared
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		c, err := coordinateFrom(elem)
		if err != nil {
			r.fail(&descriptor.ConfigurationError{Subject: subject, Message: err.Error(), Range: &rng})
			continue
		}
		c.Configuration = configuration
		out = append(out, declared{coord: c, rng: rng})
	}
	return out
}

// coordinateFrom accepts "group:artifact[:version]" or platform("g:a:v").
func coordinateFrom(v cty.Value) (descriptor.DependencyCoordinate, error) {
	switch {
	case v.IsNull() || !v.IsKnown():
		return descriptor.DependencyCoordinate{}, fmt.Errorf("dependency must not be null")
	case v.Type() == cty.String:
		return parseCoordinate(v.AsString(), false)
	case v.Type().Equals(platformType):
		return parseCoordinate(v.GetAttr("platform").AsString(), true)
	}
	return descriptor.DependencyCoordinate{}, fmt.Errorf("dependency must be a coordinate string or platform(...), got %s", v.Type().FriendlyName())
}

func parseCoordinate(notation string, platform bool) (descriptor.DependencyCoordinate, error) {
	parts := strings.Split(notation, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return descriptor.DependencyCoordinate{}, fmt.Errorf("malformed coordinate %q, expected group:artifact[:version]", notation)
	}
	for _, p := range parts {
		if p == "" {
			return descriptor.DependencyCoordinate{}, fmt.Errorf("malformed coordinate %q, empty segment", notation)
		}
		if strings.ContainsFunc(p, unicode.IsSpace) {
			return descriptor.DependencyCoordinate{}, fmt.Errorf("malformed coordinate %q, segment %q contains whitespace", notation, p)
		}
	}
	c := descriptor.DependencyCoordinate{Group: parts[0], Artifact: parts[1], Platform: platform}
	if len(parts) == 3 {
		if err := checkVersionConstraint(parts[2]); err != nil {
			return descriptor.DependencyCoordinate{}, fmt.Errorf("coordinate %q: %w", notation, err)
		}
		c.Version = parts[2]
	}
	if platform && c.Version == "" {
		return descriptor.DependencyCoordinate{}, fmt.Errorf("platform coordinate %q needs a version", notation)
	}
	return c, nil
}

func versionLabel(c descriptor.DependencyCoordinate) string {
	if c.ManagedBy != "" {
		return "managed by " + c.ManagedBy
	}
	return c.Version
}

func appendUniqueModule(list []descriptor.DependencyCoordinate, c descriptor.DependencyCoordinate) []descriptor.DependencyCoordinate {
	for _, existing := range list {
		if existing.Module() == c.Module() && existing.Version == c.Version {
			return list
		}
	}
	list = append(list, c)
	sort.Slice(list, func(i, j int) bool { return list[i].String() < list[j].String() })
	return list
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
