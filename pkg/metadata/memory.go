package metadata

import (
	"context"
	"fmt"
)

// MemoryDistribution is an in-memory Distribution for embedding hosts and
// tests. Entries are added with a Go load function bound directly.
type MemoryDistribution struct {
	name        string
	version     string
	author      string
	authorEmail string
	entries     *EntrySet
}

// NewDistribution creates an in-memory distribution.
func NewDistribution(name, version string) *MemoryDistribution {
	return &MemoryDistribution{
		name:    name,
		version: version,
		entries: NewEntrySet(),
	}
}

// SetAuthor records the author metadata returned via Environment.Metadata.
func (d *MemoryDistribution) SetAuthor(name, email string) *MemoryDistribution {
	d.author = name
	d.authorEmail = email
	return d
}

// AddEntry registers an entry point under group. The load function may be
// nil for entries that only need to be enumerable.
func (d *MemoryDistribution) AddEntry(group, name, module string, load LoadFunc) *MemoryDistribution {
	d.entries.Add(group, &memoryEntry{
		name:   name,
		module: module,
		dist:   d,
		load:   load,
	})
	return d
}

func (d *MemoryDistribution) ProjectName() string { return d.name }
func (d *MemoryDistribution) Version() string     { return d.version }
func (d *MemoryDistribution) EntryMap() EntryMap  { return d.entries }

func (d *MemoryDistribution) EntryInfo(group, name string) (EntryRef, bool) {
	return d.entries.Get(group, name)
}

type memoryEntry struct {
	name   string
	module string
	dist   *MemoryDistribution
	load   LoadFunc
}

func (e *memoryEntry) Name() string               { return e.name }
func (e *memoryEntry) Module() string             { return e.module }
func (e *memoryEntry) Distribution() Distribution { return e.dist }

func (e *memoryEntry) Load(ctx context.Context, args ...any) (any, error) {
	if e.load == nil {
		return nil, fmt.Errorf("entry %s has no load function", e.name)
	}
	return e.load(ctx, args...)
}

// MemoryEnvironment is an Environment over a fixed set of in-memory
// distributions, in registration order.
type MemoryEnvironment struct {
	dists  []*MemoryDistribution
	byName map[string]*MemoryDistribution
}

// NewEnvironment creates an environment holding the given distributions.
func NewEnvironment(dists ...*MemoryDistribution) *MemoryEnvironment {
	env := &MemoryEnvironment{byName: make(map[string]*MemoryDistribution)}
	for _, d := range dists {
		env.Register(d)
	}
	return env
}

// Register adds a distribution to the working set. A distribution with the
// same project name replaces the earlier registration.
func (e *MemoryEnvironment) Register(d *MemoryDistribution) {
	if _, exists := e.byName[d.name]; !exists {
		e.dists = append(e.dists, d)
	} else {
		for i, old := range e.dists {
			if old.name == d.name {
				e.dists[i] = d
				break
			}
		}
	}
	e.byName[d.name] = d
}

func (e *MemoryEnvironment) Distribution(packageName string) (Distribution, error) {
	d, ok := e.byName[packageName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, packageName)
	}
	return d, nil
}

func (e *MemoryEnvironment) Metadata(packageName string) (map[string]string, error) {
	d, ok := e.byName[packageName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, packageName)
	}
	return map[string]string{
		"Author":       d.author,
		"Author-email": d.authorEmail,
	}, nil
}

func (e *MemoryEnvironment) AllDistributions() []Distribution {
	out := make([]Distribution, 0, len(e.dists))
	for _, d := range e.dists {
		out = append(out, d)
	}
	return out
}
