package plugins

import (
	"context"
	"fmt"

	"github.com/dotplug/dotplug/pkg/metadata"
)

// Plugin is a resolved, addressable extension-point implementation. It is a
// read-only view over a registered entry reference; a Plugin only exists for
// an entry that is actually registered.
type Plugin struct {
	group string
	entry metadata.EntryRef
	env   metadata.Environment
}

func newPlugin(env metadata.Environment, group string, entry metadata.EntryRef) *Plugin {
	return &Plugin{group: group, entry: entry, env: env}
}

// Name is the plugin's leaf name.
func (p *Plugin) Name() string {
	return p.entry.Name()
}

// Group is the fully qualified group the plugin is registered under.
func (p *Plugin) Group() string {
	return p.group
}

// Path is the full dotted path, always group + "." + name.
func (p *Plugin) Path() string {
	return p.group + "." + p.entry.Name()
}

// Module is the target identifier the plugin's entry resolves to.
func (p *Plugin) Module() string {
	return p.entry.Module()
}

// Package is the project name of the owning distribution.
func (p *Plugin) Package() string {
	return p.entry.Distribution().ProjectName()
}

// Version is the owning distribution's version.
func (p *Plugin) Version() string {
	return p.entry.Distribution().Version()
}

// Entry exposes the underlying entry reference.
func (p *Plugin) Entry() metadata.EntryRef {
	return p.entry
}

// Author looks up the owning package's metadata and formats it as
// "name <email>". A metadata lookup failure propagates unchanged; it is not
// expected in normal operation since the plugin's own package exists.
func (p *Plugin) Author() (string, error) {
	meta, err := p.env.Metadata(p.Package())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s <%s>", meta["Author"], meta["Author-email"]), nil
}

// Load delegates to the loader bound to the entry reference. The result and
// any failure are the loader's, passed through without interpretation.
func (p *Plugin) Load(ctx context.Context, args ...any) (any, error) {
	return p.entry.Load(ctx, args...)
}

// Equal reports whether two plugins resolve the same entry under the same
// group.
func (p *Plugin) Equal(other *Plugin) bool {
	return other != nil && p.group == other.group && p.entry == other.entry
}

func (p *Plugin) String() string {
	return "Plugin(" + p.Path() + ")"
}
