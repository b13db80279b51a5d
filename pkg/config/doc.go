// Package config loads dotplug CLI configuration from environment
// variables: DOTPLUG_PLUGIN_DIRS (path list), DOTPLUG_LOG_LEVEL, and
// DOTPLUG_WASM_ENABLED.
package config
