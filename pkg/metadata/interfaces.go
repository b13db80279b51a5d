package metadata

import (
	"context"
	"errors"
	"iter"
)

// ErrNotFound is returned by an Environment when a package has no known
// distribution or metadata.
var ErrNotFound = errors.New("distribution not found")

// LoadFunc is the callable form of a loaded entry point target.
type LoadFunc func(ctx context.Context, args ...any) (any, error)

// EntryRef is an opaque reference to a single registered entry point.
// Concrete environments (in-memory, manifest-backed) provide adapters.
type EntryRef interface {
	// Name is the leaf name the entry was registered under.
	Name() string

	// Module is the target identifier the entry resolves to, such as
	// "mypackage/readers:YAML" or "plugins/readers.wasm:read".
	Module() string

	// Distribution returns the distribution that owns this entry.
	Distribution() Distribution

	// Load resolves the entry into a live value. Side effects and failure
	// modes are owned by the backing loader and propagate unchanged.
	Load(ctx context.Context, args ...any) (any, error)
}

// EntryMap is an ordered two-level mapping of group name to entry name to
// EntryRef. Iteration order is registration order, never sorted.
type EntryMap interface {
	// Groups yields every group key in registration order.
	Groups() iter.Seq[string]

	// Names yields the entry names within a group in registration order.
	// Unknown groups yield nothing.
	Names(group string) iter.Seq[string]

	// Get returns the entry registered under (group, name).
	Get(group, name string) (EntryRef, bool)
}

// Distribution is a read-only view of one installed package and its
// registered entry points.
type Distribution interface {
	ProjectName() string
	Version() string
	EntryMap() EntryMap

	// EntryInfo is a direct (group, name) lookup, equivalent to
	// EntryMap().Get but without touching the rest of the map.
	EntryInfo(group, name string) (EntryRef, bool)
}

// Environment supplies distributions and package metadata to the resolution
// layer. It is injected rather than ambient so tests and embedding hosts can
// substitute their own working set.
type Environment interface {
	// Distribution resolves a package name to its distribution, or an error
	// wrapping ErrNotFound when the package is unknown.
	Distribution(packageName string) (Distribution, error)

	// Metadata returns package metadata including the "Author" and
	// "Author-email" keys, or an error wrapping ErrNotFound.
	Metadata(packageName string) (map[string]string, error)

	// AllDistributions enumerates every distribution in the working set,
	// used by the search-all-packages mode.
	AllDistributions() []Distribution
}
