package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dotplug/dotplug/pkg/plugins"
)

// Manifest describes one distribution: its identity, author metadata, and
// the entry points it registers. EntryPoints stays a yaml.Node so the
// document order of groups and names survives decoding; registration order
// is the iteration order the resolution layer guarantees.
type Manifest struct {
	Name        string    `yaml:"name"`         // Package name, validated against the package naming convention
	Version     string    `yaml:"version"`      // Distribution version
	Author      string    `yaml:"author"`       // Author name
	AuthorEmail string    `yaml:"author_email"` // Author email
	EntryPoints yaml.Node `yaml:"entry_points"` // group -> name -> load target
}

// ValidationError represents a manifest validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseManifest parses a YAML manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}

// LoadManifest loads and parses a manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ValidateManifest performs basic validation on a manifest.
func ValidateManifest(manifest *Manifest) []ValidationError {
	var errors []ValidationError

	if manifest.Name == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "package name is required",
		})
	} else if err := plugins.ValidatePackageName(manifest.Name); err != nil {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("invalid package name: %s", manifest.Name),
		})
	}

	if manifest.Version == "" {
		errors = append(errors, ValidationError{
			Field:   "version",
			Message: "version is required",
		})
	}

	if kind := manifest.EntryPoints.Kind; kind != 0 && kind != yaml.MappingNode {
		errors = append(errors, ValidationError{
			Field:   "entry_points",
			Message: "entry_points must be a mapping of group to name to target",
		})
	}

	return errors
}
