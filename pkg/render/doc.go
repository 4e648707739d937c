// Package render provides output rendering for assembled dashboards.
//
// # Overview
//
// This package contains the sinks that turn an assembled dashboard body or
// widget tree into concrete outputs. It provides:
//
//   - JSON dashboard documents (in [sink], the primary output)
//   - ASCII terminal previews of the grid
//   - Graphviz DOT and SVG diagrams of the widget tree
//
// # JSON Documents
//
// [sink.RenderJSON] serializes the flattened body. This is the document
// submitted to a dashboard service.
//
//	data, err := sink.RenderJSON(body)
//	data, err = sink.RenderJSON(body, sink.WithJSONCompact())
//
// # Terminal Previews
//
// [sink.RenderText] draws each positioned widget as a box on a character
// grid, which the CLI preview command displays interactively.
//
// # Tree Diagrams
//
// [sink.TreeDOT] walks the widget tree and emits a Graphviz DOT digraph;
// [sink.RenderSVG] renders that DOT source to SVG.
package render
