// Package cli implements the dotplug command line: groups, get, find, and
// load over a manifest-discovered plugin environment.
package cli
