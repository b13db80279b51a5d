package plugins

import "errors"

// Error kinds surfaced by the resolution layer. Callers test them with
// errors.Is; wrapped messages carry the offending name or path.
var (
	// ErrInvalidPackageName is returned when a package name fails the
	// ^[a-z_][a-z0-9_]{1,50}$ naming convention.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrPackageNotFound is returned when the environment has no
	// distribution for a validated package name.
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidPluginPath is returned when a dotted path yields fewer than
	// a group and a name component.
	ErrInvalidPluginPath = errors.New("invalid plugin path")

	// ErrPluginNotFound is returned by the imperative load paths when
	// resolution yields nothing. The non-failing lookups (Get, Find, Group)
	// report absence as a value instead.
	ErrPluginNotFound = errors.New("plugin not found")
)
