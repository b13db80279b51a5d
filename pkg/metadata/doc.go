// Package metadata defines the external collaborator contracts the
// resolution layer consumes: distributions, their ordered entry maps, entry
// references, and the environment that enumerates the installed working set.
//
// The package also ships an in-memory implementation (MemoryEnvironment,
// MemoryDistribution) used by embedding hosts that register entry points
// directly from Go, and by tests as a substitute working set.
package metadata
