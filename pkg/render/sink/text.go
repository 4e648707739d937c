package sink

import (
	"strings"

	"github.com/gridboard/gridboard/pkg/grid"
)

// cellWidth is how many terminal columns one grid unit spans. One grid unit
// of height maps to one terminal line.
const cellWidth = 3

// RenderText draws the positioned records as boxes on a character canvas.
// Records are drawn in document order, so overlapping widgets cover earlier
// ones the same way the backend renders them.
func RenderText(body grid.Body) string {
	if len(body.Widgets) == 0 {
		return "(empty dashboard)\n"
	}

	height := 0
	for _, w := range body.Widgets {
		if w.Y+w.Height > height {
			height = w.Y + w.Height
		}
	}

	canvas := newCanvas(grid.GridWidth*cellWidth+1, height+1)
	for _, w := range body.Widgets {
		canvas.drawBox(w)
	}
	return canvas.String()
}

type canvas struct {
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &canvas{cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = r
}

// drawBox draws one record's border and label. The border sits on the cell
// edges: a record at grid (x, y) sized w x h covers terminal columns
// [x*cellWidth, (x+w)*cellWidth] and lines [y, y+h].
func (c *canvas) drawBox(w grid.Positioned) {
	left := w.X * cellWidth
	right := (w.X + w.Width) * cellWidth
	top := w.Y
	bottom := w.Y + w.Height

	// Clear the interior so covered widgets disappear underneath.
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			c.set(x, y, ' ')
		}
	}

	for x := left; x <= right; x++ {
		c.set(x, top, '-')
		c.set(x, bottom, '-')
	}
	for y := top; y <= bottom; y++ {
		c.set(left, y, '|')
		c.set(right, y, '|')
	}
	c.set(left, top, '+')
	c.set(right, top, '+')
	c.set(left, bottom, '+')
	c.set(right, bottom, '+')

	// Label inside the box when there is an interior line to put it on.
	if w.Height >= 2 {
		label := w.Type
		if max := right - left - 3; len(label) > max {
			if max <= 0 {
				return
			}
			label = label[:max]
		}
		for i, r := range label {
			c.set(left+2+i, top+1, r)
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
