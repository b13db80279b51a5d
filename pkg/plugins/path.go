package plugins

import (
	"fmt"
	"strings"
)

// ParsePath splits a dotted plugin path into its group and name components,
// relative to the owning package.
//
// The leading package segment is optional: when the first segment equals
// packageName exactly it is dropped before anything else. With fillWildcards
// set, short paths are right-padded with "*" segments until a group and a
// name remain, so a bare package name parses as the maximally wildcarded
// ("pkg.*", "*") query. The last segment is always the plugin name; every
// remaining segment belongs to the group, which is returned re-prefixed with
// the package name. Groups may therefore contain embedded dots.
func ParsePath(packageName, path string, fillWildcards bool) (group, name string, err error) {
	if path == "" {
		return "", "", fmt.Errorf("%w: path is empty", ErrInvalidPluginPath)
	}

	parts := strings.Split(path, ".")
	if parts[0] == packageName {
		parts = parts[1:]
	}

	if fillWildcards {
		for len(parts) < 2 {
			parts = append(parts, "*")
		}
	}

	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPluginPath, path)
	}

	name = parts[len(parts)-1]
	group = packageName + "." + strings.Join(parts[:len(parts)-1], ".")
	return group, name, nil
}
