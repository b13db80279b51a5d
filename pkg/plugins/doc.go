// Package plugins resolves dotted plugin paths against registered entry
// points.
//
// # Overview
//
// A host package declares plugin groups ("mypackage.readers") and third
// parties register named entry points under them, without compile-time
// coupling. This package turns a path of the form package[.segment]*.name
// into zero, one, or many resolved plugins, and can load them through the
// environment's loader.
//
// # Addressing
//
// Paths are dotted, the leading package segment is optional, and only the
// last segment is ever the plugin name; everything in between is the group,
// which may itself contain dots. In query paths "*" is a reserved wildcard
// segment matching one or more characters, so it can absorb several dotted
// segments at once. Patterns match as anchored prefixes, letting a bare
// group prefix cover all of its children.
//
// # Entities
//
// Registry: validated entry point bound to one package's distribution
// (Groups, Group, Get, Find, Load)
//
// Group: the plugins registered under one group name (Get, Load, Plugins)
//
// Plugin: one resolved entry point (Name, Path, Module, Package, Version,
// Author, Load)
//
// # Errors
//
// Absence is a value, not an error: Get returns nil, Find returns an empty
// slice, Group reports false. The error kinds (ErrInvalidPackageName,
// ErrPackageNotFound, ErrInvalidPluginPath, ErrPluginNotFound) are reserved
// for contract violations and the imperative load-or-fail paths, and are
// raised at the earliest possible point.
//
// # Usage Example
//
// Resolve and load:
//
//	registry, err := plugins.New(env, "mypackage")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	readers, _ := registry.Find("mypackage.readers")
//	for _, p := range readers {
//		fmt.Println(p.Path(), p.Module())
//	}
//
//	out, err := registry.Load(ctx, "mypackage.readers.yml")
//
// # Related Packages
//
//   - pkg/metadata: collaborator contracts and the in-memory environment
//   - pkg/manifest: YAML-manifest-backed environment
//   - pkg/loaders: load targets (symbol table, WASM)
package plugins
