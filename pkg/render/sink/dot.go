package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/gridboard/gridboard/pkg/grid"
)

// typed is implemented by leaves that carry a record type name.
type typed interface{ Type() string }

// TreeDOT converts a widget tree to Graphviz DOT format, showing the
// row/column structure and each widget's derived size. Useful for debugging
// why a dashboard laid out the way it did.
func TreeDOT(root grid.Widget) string {
	var buf bytes.Buffer
	buf.WriteString("digraph widgets {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	next := 0
	var walk func(w grid.Widget) string
	walk = func(w grid.Widget) string {
		id := fmt.Sprintf("n%d", next)
		next++

		fmt.Fprintf(&buf, "  %s [%s];\n", id, nodeAttrs(w))
		for _, child := range childrenOf(w) {
			childID := walk(child)
			fmt.Fprintf(&buf, "  %s -> %s;\n", id, childID)
		}
		return id
	}
	walk(root)

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(w grid.Widget) string {
	label := w.Kind().String()
	if t, ok := w.(typed); ok {
		label = t.Type()
	}
	attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%s\n%dx%d", label, w.Width(), w.Height()))
	if w.Kind() != grid.KindLeaf {
		attrs += ", fillcolor=lightgrey"
	}
	return attrs
}

func childrenOf(w grid.Widget) []grid.Widget {
	switch v := w.(type) {
	case *grid.Row:
		return v.Children()
	case *grid.Column:
		return v.Children()
	}
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
