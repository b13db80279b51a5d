package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dotplug/dotplug/pkg/loaders"
	"github.com/dotplug/dotplug/pkg/metadata"
)

// Environment is a metadata.Environment discovered from directories of YAML
// manifests. Discover rebuilds the working set from scratch and swaps it in
// atomically, so resolvers always see a consistent snapshot.
type Environment struct {
	dirs   []string
	loader loaders.Loader
	log    *logrus.Logger

	mu     sync.RWMutex
	dists  []*Distribution
	byName map[string]*Distribution
}

// NewEnvironment creates an environment scanning the given directories.
func NewEnvironment(dirs []string, loader loaders.Loader, log *logrus.Logger) *Environment {
	if log == nil {
		log = logrus.New()
	}

	return &Environment{
		dirs:   dirs,
		loader: loader,
		log:    log,
		byName: make(map[string]*Distribution),
	}
}

// Discover scans the manifest directories and replaces the working set.
// Unreadable or invalid manifests are logged and skipped, never fatal;
// within a directory, manifests load in filename order.
func (e *Environment) Discover() error {
	var dists []*Distribution
	byName := make(map[string]*Distribution)

	for _, dir := range e.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			e.log.Debugf("Manifest directory does not exist: %s", dir)
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			e.log.Warnf("Failed to read manifest directory %s: %v", dir, err)
			continue
		}

		for _, ent := range entries {
			if ent.IsDir() || !isManifestFile(ent.Name()) {
				continue
			}

			path := filepath.Join(dir, ent.Name())
			dist, err := e.loadDistribution(path)
			if err != nil {
				e.log.Warnf("Failed to load manifest %s: %v", path, err)
				continue
			}

			if prev, exists := byName[dist.ProjectName()]; exists {
				e.log.Warnf("Duplicate distribution %s in %s (keeping %s)",
					dist.ProjectName(), path, prev.Source())
				continue
			}

			dists = append(dists, dist)
			byName[dist.ProjectName()] = dist
		}
	}

	e.mu.Lock()
	e.dists = dists
	e.byName = byName
	e.mu.Unlock()

	e.log.Debugf("Discovered %d distributions", len(dists))
	return nil
}

func (e *Environment) loadDistribution(path string) (*Distribution, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	if errs := ValidateManifest(manifest); len(errs) > 0 {
		return nil, fmt.Errorf("manifest validation failed: %v", errs)
	}

	return NewDistribution(manifest, e.loader, path)
}

func isManifestFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (e *Environment) Distribution(packageName string) (metadata.Distribution, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	dist, ok := e.byName[packageName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", metadata.ErrNotFound, packageName)
	}
	return dist, nil
}

func (e *Environment) Metadata(packageName string) (map[string]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	dist, ok := e.byName[packageName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", metadata.ErrNotFound, packageName)
	}
	return map[string]string{
		"Author":       dist.manifest.Author,
		"Author-email": dist.manifest.AuthorEmail,
	}, nil
}

func (e *Environment) AllDistributions() []metadata.Distribution {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]metadata.Distribution, 0, len(e.dists))
	for _, dist := range e.dists {
		out = append(out, dist)
	}
	return out
}
