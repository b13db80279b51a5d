package manifest

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dotplug/dotplug/pkg/loaders"
	"github.com/dotplug/dotplug/pkg/metadata"
)

// Distribution is a metadata.Distribution backed by one manifest file.
// Entry targets are dispatched to the environment's loader on Load.
type Distribution struct {
	manifest *Manifest
	entries  *metadata.EntrySet
	loader   loaders.Loader
	source   string
}

// NewDistribution builds a distribution from a parsed manifest. The source
// is the manifest's file path, kept for log messages; it may be empty.
func NewDistribution(manifest *Manifest, loader loaders.Loader, source string) (*Distribution, error) {
	dist := &Distribution{
		manifest: manifest,
		entries:  metadata.NewEntrySet(),
		loader:   loader,
		source:   source,
	}

	node := manifest.EntryPoints
	if node.Kind == 0 {
		// no entry_points section; an empty distribution is legal
		return dist, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest %s: entry_points is not a mapping", manifest.Name)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		group := node.Content[i].Value
		inner := node.Content[i+1]
		if inner.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("manifest %s: entry point group %s is not a mapping", manifest.Name, group)
		}

		for j := 0; j+1 < len(inner.Content); j += 2 {
			name := inner.Content[j].Value
			target := inner.Content[j+1].Value
			if target == "" {
				return nil, fmt.Errorf("manifest %s: entry %s.%s has no target", manifest.Name, group, name)
			}

			dist.entries.Add(group, &entry{name: name, target: target, dist: dist})
		}
	}

	return dist, nil
}

func (d *Distribution) ProjectName() string         { return d.manifest.Name }
func (d *Distribution) Version() string             { return d.manifest.Version }
func (d *Distribution) EntryMap() metadata.EntryMap { return d.entries }

func (d *Distribution) EntryInfo(group, name string) (metadata.EntryRef, bool) {
	return d.entries.Get(group, name)
}

// Source is the manifest file path the distribution was built from.
func (d *Distribution) Source() string { return d.source }

type entry struct {
	name   string
	target string
	dist   *Distribution
}

func (e *entry) Name() string                        { return e.name }
func (e *entry) Module() string                      { return e.target }
func (e *entry) Distribution() metadata.Distribution { return e.dist }

func (e *entry) Load(ctx context.Context, args ...any) (any, error) {
	if e.dist.loader == nil {
		return nil, fmt.Errorf("no loader configured for target %s", e.target)
	}
	return e.dist.loader.Load(ctx, e.target, args...)
}
