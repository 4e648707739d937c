// Package grid implements the dashboard layout engine.
//
// A dashboard body is computed from a tree of widgets laid out on a fixed
// 24-column grid. Leaf widgets carry opaque rendering properties; Row and
// Column widgets group children horizontally (with line wrapping) and
// vertically (stacked). Flattening the tree produces an ordered list of
// absolutely positioned records that the rendering backend consumes.
//
// # Layout model
//
// Every widget has an intrinsic width and height in grid units. Container
// sizes are derived from their children at construction time; the tree is
// immutable once built. Layout is a pure function: placing the same tree at
// the same offset always yields the same positions, in traversal order.
//
// # Usage
//
//	row := grid.NewRow(w1, w2, w3)
//	body, err := grid.BuildBody(grid.BodyInput{
//	    Start:   "-PT3H",
//	    Widgets: []grid.Widget{row},
//	}, grid.Env{Region: "eu-west-1"})
package grid

// Grid system constants.
const (
	// GridWidth is the number of columns in the dashboard grid. Widget
	// widths are expressed in [1, GridWidth] grid units.
	GridWidth = 24

	// MaxWidgets is the maximum number of top-level widgets accepted by
	// [BuildBody].
	MaxWidgets = 100
)

// Kind discriminates the widget variants. It is fixed at construction time,
// so classifying a widget never requires runtime type inspection.
type Kind uint8

const (
	// KindLeaf is a widget with no children that emits its own record.
	KindLeaf Kind = iota
	// KindRow groups children left-to-right with line wrapping.
	KindRow
	// KindColumn groups children top-to-bottom.
	KindColumn
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	}
	return "unknown"
}

// Env carries resolved environment values that leaf property producers may
// need (for example the region a metric widget renders against). The layout
// arithmetic never interprets it; it is passed through unchanged.
type Env struct {
	// Region identifies the backend region leaves should render against.
	// Opaque to the engine.
	Region string
}

// Positioned is one absolutely positioned leaf record in the flattened
// output. Order in the widgets array is significant: the backend renders
// records in sequence, later records overlapping earlier ones on collision.
type Positioned struct {
	Type       string `json:"type"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Properties any    `json:"properties"`
}

// Widget is a unit of layout. Implementations must be immutable after
// construction so that layout stays a pure function of the tree.
type Widget interface {
	// Kind reports the widget variant.
	Kind() Kind

	// Width returns the widget's horizontal extent in grid units. For
	// containers this is derived from the children.
	Width() int

	// Height returns the widget's vertical extent in grid units.
	Height() int

	// Place appends the widget's positioned records to out, anchoring the
	// widget's top-left corner at (x, y). Containers recurse into their
	// children; leaves append exactly one record. A failure from a leaf
	// property producer is returned unchanged.
	Place(out *[]Positioned, x, y int, env Env) error
}
