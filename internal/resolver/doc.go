// Package resolver locates and loads the extension's JSON configuration file.
//
// A [Resolver] walks an ordered list of configuration directories, builds the
// candidate path <dir>/<extension-name>.json for each of them and returns the
// parsed content of the first candidate that exists as a regular file. The
// search stops at the first match: at most one file is ever loaded.
//
// The order in which the directories are searched is an explicit [Order]
// value. [LastListedFirst] reverses the host-provided list, so the directory
// listed last by the host wins; [FirstListedFirst] keeps the list as given.
//
// The resolver keeps no state between calls and never caches: every call
// reads the disk again. Callers decide whether to hold on to the result.
package resolver
