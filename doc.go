// Package flexbox is a constraint-based 2D box-layout engine.
//
// Users import this single package for the complete public API: geometry
// primitives, node construction, style options, and the Layout orchestrator.
// A declarative tree of rows, columns, boxes and leaves is resolved by
// [Layout.Compute] into an exact position and size for every node, following
// a flexbox-like model (main/cross axis, grow/shrink, justify/align, gap,
// padding). Results are queried by node id, as local offsets or as absolute
// positions relative to the tree root.
//
// The engine is fully synchronous and performs no I/O. A Layout is not safe
// for concurrent use; callers recompute by building a fresh tree rather than
// mutating one that is being read.
package flexbox
