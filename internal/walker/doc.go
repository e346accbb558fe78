// Package walker enumerates directories into filesystem entities.
//
// List walks a directory in underlying directory order, optionally
// recursing depth-first. A recursive non-flattened walk nests child
// entities under their folder and aggregates folder sizes bottom-up,
// so one top-level size conveys the whole subtree without a second
// traversal. A flattened walk splices every transitive entry into a
// single sequence; each entry still reports its true directory, so
// hierarchy can be reconstructed from flat results.
//
// Find and Glob are flattened recursive walks filtered through a
// predicate or a doublestar pattern. TotalSize is the fast aggregate:
// a parallel walk that returns one number instead of entities.
package walker
