// Package config provides the view settings of viewlines.
//
// Settings come from four layers, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, which may @include other TOML files
//  3. A YAML file
//  4. Environment variables with the VIEWLINES_ prefix
//
// Each source is decoded to a map by the loader package, the maps are
// deep-merged, and the result is bound onto a Config and validated. A
// Manager keeps the current Config and, when asked to watch, reloads it
// whenever one of the files changes.
//
// A minimal TOML file:
//
//	[view]
//	tabSize = 4
//	wordWrap = "wordWrapColumn"
//	wrappingColumn = 80
//	wrappingIndent = "same"
//
//	[logging]
//	level = "info"
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment loading, map merging
//   - watcher: fsnotify-based change notification with debouncing
package config
