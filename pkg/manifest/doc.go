// Package manifest implements the metadata environment over YAML manifest
// files. Each manifest describes one distribution and the entry points it
// registers:
//
//	name: mypackage
//	version: 1.2.3
//	author: Jane Doe
//	author_email: jane.doe@mail.com
//	entry_points:
//	  mypackage.readers:
//	    yml: mypackage/readers:YAML
//	    csv: mypackage/readers:CSV
//
// The environment scans configured directories for *.yaml/*.yml files,
// skipping invalid manifests with a warning, and can watch the directories
// with fsnotify to keep the working set current. Entry point targets are
// opaque module identifiers handed to the configured loaders.Loader.
package manifest
