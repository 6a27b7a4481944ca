// Package config provides configuration loading, merging, and validation
// facilities for the server extension.
//
// Configuration is assembled from multiple sources. Sources are merged in the
// following order and a field set by an earlier source is never overwritten
// by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
