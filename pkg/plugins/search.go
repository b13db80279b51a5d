package plugins

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dotplug/dotplug/pkg/metadata"
)

// packageOf derives the owning package from a path's first segment.
func packageOf(path string) string {
	if i := strings.Index(path, "."); i >= 0 {
		return path[:i]
	}
	return path
}

// GetPlugin resolves an exact path, deriving the package from the path's
// first segment. It returns (nil, nil) when the plugin is unregistered.
func GetPlugin(env metadata.Environment, path string) (*Plugin, error) {
	registry, err := New(env, packageOf(path))
	if err != nil {
		return nil, err
	}
	return registry.Get(path)
}

// FindPlugins resolves a wildcard pattern within the package named by the
// pattern's first segment.
func FindPlugins(env metadata.Environment, pattern string) ([]*Plugin, error) {
	registry, err := New(env, packageOf(pattern))
	if err != nil {
		return nil, err
	}
	return registry.Find(pattern)
}

// LoadPlugin resolves path and loads the plugin, failing with
// ErrPluginNotFound when nothing is registered at that path.
func LoadPlugin(ctx context.Context, env metadata.Environment, path string, args ...any) (any, error) {
	registry, err := New(env, packageOf(path))
	if err != nil {
		return nil, err
	}
	return registry.Load(ctx, path, args...)
}

// Search matches pattern against every distribution in the environment's
// working set, repeating the per-package wildcard search for each. The
// pattern is parsed relative to each distribution in turn, so a pattern
// anchored on one package only matches within that package. Distributions
// the pattern cannot be parsed for are skipped. The result may be empty;
// Search never fails.
func Search(env metadata.Environment, pattern string) []*Plugin {
	var out []*Plugin
	for _, dist := range env.AllDistributions() {
		registry := &Registry{env: env, dist: dist, log: logrus.StandardLogger()}
		seq, err := registry.FindSeq(pattern)
		if err != nil {
			continue
		}
		for plugin := range seq {
			out = append(out, plugin)
		}
	}
	return out
}
