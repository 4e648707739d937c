// Package pkg provides the core libraries for Gridboard dashboard assembly.
//
// # Overview
//
// Gridboard turns declarative dashboard definitions into flattened grid
// layouts ready to submit to a dashboard service. The pkg directory is
// organized into six main areas:
//
//  1. [grid] - Layout engine (widget tree, row wrapping, column stacking, body assembly)
//  2. [widgets] - Concrete widget constructors (text, metric, alarm, spacer)
//  3. [definition] - TOML definition parsing and validation
//  4. [pipeline] - Orchestration (load → build → render)
//  5. [render] - Output sinks (JSON, terminal text, DOT/SVG tree diagrams)
//  6. [cache] - Artifact caching (file, Redis, null)
//
// # Architecture
//
// The typical data flow through Gridboard:
//
//	TOML Definition
//	         ↓
//	definition.Parse
//	         ↓
//	grid.BuildBody (rows wrap at 24 columns, columns stack)
//	         ↓
//	render sinks (JSON body, text preview, DOT tree)
//
// The [errors] package provides coded errors shared by every layer, and
// [observability] carries optional instrumentation hooks.
package pkg
