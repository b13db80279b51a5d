package loaders

import (
	"context"
	"fmt"
	"sync"
)

// Symbol is a host-provided function bound to a module identifier.
type Symbol func(ctx context.Context, args ...any) (any, error)

var (
	// symbols is the package-level target table
	symbols = make(map[string]Symbol)
	// mu protects concurrent access to symbols
	mu sync.RWMutex
)

// Register binds a load target to a host function. Registering a duplicate
// target or a nil function is an error.
func Register(target string, fn Symbol) error {
	if fn == nil {
		return fmt.Errorf("cannot register nil symbol for target %s", target)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := symbols[target]; exists {
		return fmt.Errorf("symbol already registered: %s", target)
	}

	symbols[target] = fn
	return nil
}

// Unregister removes a target binding.
func Unregister(target string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := symbols[target]; !exists {
		return fmt.Errorf("symbol not registered: %s", target)
	}

	delete(symbols, target)
	return nil
}

// Lookup returns the function bound to target.
func Lookup(target string) (Symbol, bool) {
	mu.RLock()
	defer mu.RUnlock()

	fn, exists := symbols[target]
	return fn, exists
}

// Count returns the number of registered targets.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()

	return len(symbols)
}

// Clear removes all registered targets.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	symbols = make(map[string]Symbol)
}

// SymbolTable is a Loader over the package-level target table. It is what
// in-process hosts use: they Register their entry point implementations at
// startup and hand a SymbolTable to the environment.
type SymbolTable struct{}

// Load invokes the function registered for target. A missing target fails
// the load; the plugin itself resolved, its target did not.
func (SymbolTable) Load(ctx context.Context, target string, args ...any) (any, error) {
	fn, ok := Lookup(target)
	if !ok {
		return nil, fmt.Errorf("load target not registered: %s", target)
	}
	return fn(ctx, args...)
}
