package grid

// Column stacks its children top-to-bottom with no wrapping. The typical
// shape is a column of rows: each row packs its own widgets horizontally and
// the column stacks the rows vertically.
type Column struct {
	children []Widget
	width    int
	height   int
}

// NewColumn creates a column over the given children. Derived height is the
// sum of the children's heights; derived width is the widest child. The
// children slice is copied.
func NewColumn(children ...Widget) *Column {
	c := &Column{children: append([]Widget(nil), children...)}
	for _, child := range c.children {
		if w := child.Width(); w > c.width {
			c.width = w
		}
		c.height += child.Height()
	}
	return c
}

// Kind returns KindColumn.
func (c *Column) Kind() Kind { return KindColumn }

// Width returns the widest child's width.
func (c *Column) Width() int { return c.width }

// Height returns the sum of the children's heights.
func (c *Column) Height() int { return c.height }

// Children returns the column's child sequence. The returned slice must not
// be modified.
func (c *Column) Children() []Widget { return c.children }

// Place stacks each child below the previous one, starting at (x, y).
func (c *Column) Place(out *[]Positioned, x, y int, env Env) error {
	var cursorY int
	for _, child := range c.children {
		if err := child.Place(out, x, y+cursorY, env); err != nil {
			return err
		}
		cursorY += child.Height()
	}
	return nil
}
