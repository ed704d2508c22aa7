// Package vrhlog wires a single package-level zerolog.Logger the way
// itohio/EasyRobot's pkg/logger wires one: built once at init time, with a
// caller-aware console writer for interactive use. The core algebra
// packages (trie, boundary, reduce) stay logging-free by design — only the
// long-running rips expansion and the CLI driver consult Log.
package vrhlog
