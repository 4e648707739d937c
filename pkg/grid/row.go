package grid

// Row lays its children out left-to-right, wrapping to a new line whenever
// the next child would cross the right edge of the grid. The flow mirrors
// inline text wrapping: callers declare a flat sequence of widgets and the
// row computes the line breaks.
type Row struct {
	children []Widget
	width    int
	height   int
}

// NewRow creates a row over the given children. The derived size is computed
// once here: height covers all wrapped lines, width is the widest line
// reached, capped at GridWidth. The children slice is copied; the row owns
// its sequence exclusively.
func NewRow(children ...Widget) *Row {
	r := &Row{children: append([]Widget(nil), children...)}

	var cursorX, cursorY, lineHeight int
	for _, c := range r.children {
		if cursorX+c.Width() > GridWidth {
			cursorX = 0
			cursorY += lineHeight
			lineHeight = 0
		}
		cursorX += c.Width()
		if h := c.Height(); h > lineHeight {
			lineHeight = h
		}
		if cursorX > r.width {
			r.width = cursorX
		}
	}
	if r.width > GridWidth {
		// A single child wider than the grid is placed, not clipped, but
		// the row never reports an extent beyond the grid.
		r.width = GridWidth
	}
	r.height = cursorY + lineHeight
	return r
}

// Kind returns KindRow.
func (r *Row) Kind() Kind { return KindRow }

// Width returns the widest line extent, capped at GridWidth.
func (r *Row) Width() int { return r.width }

// Height returns the total height across all wrapped lines.
func (r *Row) Height() int { return r.height }

// Children returns the row's child sequence. The returned slice must not be
// modified.
func (r *Row) Children() []Widget { return r.children }

// Place replays the wrapping walk, placing each child at its cursor
// position relative to (x, y).
func (r *Row) Place(out *[]Positioned, x, y int, env Env) error {
	var cursorX, cursorY, lineHeight int
	for _, c := range r.children {
		if cursorX+c.Width() > GridWidth {
			cursorX = 0
			cursorY += lineHeight
			lineHeight = 0
		}
		if err := c.Place(out, x+cursorX, y+cursorY, env); err != nil {
			return err
		}
		cursorX += c.Width()
		if h := c.Height(); h > lineHeight {
			lineHeight = h
		}
	}
	return nil
}
