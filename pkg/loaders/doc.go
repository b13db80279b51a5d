// Package loaders provides the load step that turns a resolved entry point
// target into a live value: an in-process symbol table for Go hosts, and
// (in the wasm subpackage) an Extism-backed loader for WASM plugin files.
package loaders
