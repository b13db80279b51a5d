package plugins

import (
	"context"
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dotplug/dotplug/pkg/metadata"
)

// packageNamePattern is the naming convention for host packages: lowercase,
// underscore-friendly, 2 to 51 characters, never starting with a digit.
var packageNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{1,50}$`)

// ValidatePackageName checks name against the package naming convention.
func ValidatePackageName(name string) error {
	if !packageNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %s", ErrInvalidPackageName, name)
	}
	return nil
}

// Registry resolves dotted plugin paths against one package's distribution.
// It is immutable after construction; every operation is a pure lookup over
// the externally owned entry map, except Load which crosses into the
// environment's loader.
type Registry struct {
	env  metadata.Environment
	dist metadata.Distribution
	log  *logrus.Logger
}

// New validates packageName and binds a registry to that package's
// distribution. This is the single construction path: an invalid name fails
// with ErrInvalidPackageName before any lookup, and an unknown package fails
// with ErrPackageNotFound.
func New(env metadata.Environment, packageName string) (*Registry, error) {
	if err := ValidatePackageName(packageName); err != nil {
		return nil, err
	}

	dist, err := env.Distribution(packageName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, packageName)
	}

	return &Registry{env: env, dist: dist, log: logrus.StandardLogger()}, nil
}

// SetLogger replaces the registry's logger. A nil logger resets to the
// standard one.
func (r *Registry) SetLogger(log *logrus.Logger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r.log = log
}

// Name is the bound distribution's project name.
func (r *Registry) Name() string {
	return r.dist.ProjectName()
}

// Version is the bound distribution's version.
func (r *Registry) Version() string {
	return r.dist.Version()
}

// Distribution exposes the bound distribution.
func (r *Registry) Distribution() metadata.Distribution {
	return r.dist
}

// Groups lists the entry-map group keys that belong to this package, in the
// order the distribution returns them.
func (r *Registry) Groups() []string {
	var out []string
	for group := range r.dist.EntryMap().Groups() {
		if strings.HasPrefix(group, r.Name()) {
			out = append(out, group)
		}
	}
	return out
}

// Group resolves a group by name, prefixing the package name when missing.
// Absence is a normal outcome, not an error.
func (r *Registry) Group(name string) (*Group, bool) {
	if !strings.HasPrefix(name, r.Name()+".") {
		name = r.Name() + "." + name
	}

	for _, group := range r.Groups() {
		if group == name {
			return &Group{name: name, dist: r.dist, env: r.env}, true
		}
	}
	return nil, false
}

// Parse splits a dotted path relative to this package. See ParsePath.
func (r *Registry) Parse(path string, fillWildcards bool) (group, name string, err error) {
	return ParsePath(r.Name(), path, fillWildcards)
}

// Get resolves an exact, wildcard-free path to its plugin. It returns
// (nil, nil) when the (group, name) pair is unregistered; only a malformed
// path is an error.
func (r *Registry) Get(path string) (*Plugin, error) {
	group, name, err := r.Parse(path, false)
	if err != nil {
		return nil, err
	}

	ref, ok := r.dist.EntryInfo(group, name)
	if !ok {
		return nil, nil
	}
	return newPlugin(r.env, group, ref), nil
}

// Find resolves a wildcard pattern to every matching plugin, in registration
// order. The result may be empty; that is not an error.
func (r *Registry) Find(pattern string) ([]*Plugin, error) {
	seq, err := r.FindSeq(pattern)
	if err != nil {
		return nil, err
	}

	var out []*Plugin
	for plugin := range seq {
		out = append(out, plugin)
	}
	return out, nil
}

// FindSeq is the lazy form of Find. The pattern is parsed with wildcard
// filling, both components are compiled as prefix matchers, and the matching
// (group, name) cross-product is yielded without materializing the entry
// map.
func (r *Registry) FindSeq(pattern string) (iter.Seq[*Plugin], error) {
	group, name, err := r.Parse(pattern, true)
	if err != nil {
		return nil, err
	}

	groupMatcher := CompilePattern(group)
	nameMatcher := CompilePattern(name)
	entries := r.dist.EntryMap()

	r.log.WithFields(logrus.Fields{
		"package": r.Name(),
		"group":   group,
		"name":    name,
	}).Debug("finding plugins")

	return func(yield func(*Plugin) bool) {
		for g := range groupMatcher.FilterSeq(entries.Groups()) {
			for n := range nameMatcher.FilterSeq(entries.Names(g)) {
				ref, ok := r.dist.EntryInfo(g, n)
				if !ok {
					continue
				}
				if !yield(newPlugin(r.env, g, ref)) {
					return
				}
			}
		}
	}, nil
}

// Load resolves path and loads the plugin, failing with ErrPluginNotFound
// when resolution yields nothing. Loader failures propagate unchanged.
func (r *Registry) Load(ctx context.Context, path string, args ...any) (any, error) {
	plugin, err := r.Get(path)
	if err != nil {
		return nil, err
	}
	if plugin == nil {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, path)
	}

	r.log.Debugf("Loading plugin %s (module %s)", plugin.Path(), plugin.Module())
	return plugin.Load(ctx, args...)
}
