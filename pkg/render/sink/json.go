// Package sink renders assembled dashboard bodies into output formats: the
// JSON document the rendering backend consumes, a plain-text grid preview
// for terminals, and a Graphviz view of the widget tree structure.
//
// All sinks are pure: they never modify the body or tree and are safe to
// call concurrently.
package sink

import (
	"encoding/json"

	"github.com/gridboard/gridboard/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact emits the document without indentation, the form sent to
// the rendering backend. The default is two-space indentation for human
// inspection.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON serializes the body into the dashboard document. Field order
// and indentation are fixed, so identical bodies yield byte-identical
// output.
func RenderJSON(body grid.Body, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.compact {
		return json.Marshal(body)
	}
	return json.MarshalIndent(body, "", "  ")
}
