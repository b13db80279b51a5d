// Package wasm loads plugin targets of the form "path/to/plugin.wasm:func"
// by instantiating the WASM module with Extism and calling the named
// exported function.
package wasm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	extism "github.com/extism/go-sdk"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tetratelabs/wazero"
)

// Loader is a loaders.Loader for WASM plugin files. Instances share one
// wazero compilation cache, so repeated loads of the same module skip
// recompilation.
type Loader struct {
	config extism.PluginConfig
	cache  wazero.CompilationCache
	log    *logrus.Logger
}

// NewLoader creates a WASM loader.
func NewLoader(log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
	}

	cache := wazero.NewCompilationCache()
	return &Loader{
		config: extism.PluginConfig{
			EnableWasi:    true,
			ModuleConfig:  wazero.NewModuleConfig(),
			RuntimeConfig: wazero.NewRuntimeConfig().WithCompilationCache(cache),
		},
		cache: cache,
		log:   log,
	}
}

// Close releases the shared compilation cache.
func (l *Loader) Close(ctx context.Context) error {
	return l.cache.Close(ctx)
}

// SplitTarget splits a "file.wasm:function" target into its parts.
func SplitTarget(target string) (file, function string, err error) {
	file, function, ok := strings.Cut(target, ":")
	if !ok || file == "" || function == "" {
		return "", "", fmt.Errorf("invalid wasm target %q: want \"file.wasm:function\"", target)
	}
	return file, function, nil
}

// Load instantiates the target's WASM module and calls the named function.
// The first arg, when present, is JSON-encoded as the plugin input; the raw
// output bytes are returned. Failures from the runtime propagate unchanged.
func (l *Loader) Load(ctx context.Context, target string, args ...any) (any, error) {
	file, function, err := SplitTarget(target)
	if err != nil {
		return nil, err
	}

	manifest := extism.Manifest{
		Wasm: []extism.Wasm{
			extism.WasmFile{Path: file},
		},
	}

	plugin, err := extism.NewPlugin(ctx, manifest, l.config, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wasm plugin %s: %w", file, err)
	}
	defer plugin.Close(ctx)

	var input []byte
	if len(args) > 0 {
		input, err = json.Marshal(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to encode wasm input: %w", err)
		}
	}

	instance := uuid.NewString()
	l.log.WithFields(logrus.Fields{
		"target":   target,
		"instance": instance,
	}).Debug("calling wasm plugin")

	_, out, err := plugin.Call(function, input)
	if err != nil {
		return nil, err
	}

	return out, nil
}
