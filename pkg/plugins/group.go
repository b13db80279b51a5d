package plugins

import (
	"context"
	"fmt"

	"github.com/dotplug/dotplug/pkg/metadata"
)

// Group is the set of plugins registered under one fully qualified group
// name. Groups are constructed transiently during resolution and hold only
// non-owning references into the distribution's entry map.
type Group struct {
	name string
	dist metadata.Distribution
	env  metadata.Environment
}

// Name is the fully qualified group name, package prefix included.
func (g *Group) Name() string {
	return g.name
}

// Distribution is the distribution the group belongs to.
func (g *Group) Distribution() metadata.Distribution {
	return g.dist
}

// Get looks up a plugin by leaf name within the group. Absence is a normal
// outcome, not an error.
func (g *Group) Get(name string) (*Plugin, bool) {
	ref, ok := g.dist.EntryInfo(g.name, name)
	if !ok {
		return nil, false
	}
	return newPlugin(g.env, g.name, ref), true
}

// Load resolves name within the group and loads it. Unlike Get, a missing
// plugin is an error here, distinct from whatever the load itself may fail
// with.
func (g *Group) Load(ctx context.Context, name string, args ...any) (any, error) {
	plugin, ok := g.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrPluginNotFound, g.name, name)
	}
	return plugin.Load(ctx, args...)
}

// Plugins lists every plugin in the group, in registration order.
func (g *Group) Plugins() []*Plugin {
	var out []*Plugin
	for name := range g.dist.EntryMap().Names(g.name) {
		if plugin, ok := g.Get(name); ok {
			out = append(out, plugin)
		}
	}
	return out
}
