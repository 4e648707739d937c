package grid

// PropsFunc produces the opaque properties object for a leaf record. It
// receives the resolved environment and may fail; the failure propagates
// unchanged through [Widget.Place] and [BuildBody].
type PropsFunc func(Env) (any, error)

// Leaf is a generic leaf widget: a rectangle of the given type and size
// whose properties are produced on demand during placement. Concrete widget
// types (text panels, metric graphs) are thin wrappers around Leaf.
type Leaf struct {
	typ    string
	width  int
	height int
	props  PropsFunc
}

// NewLeaf creates a leaf widget. The engine does not validate the size here;
// callers constructing leaves directly are responsible for keeping width
// within [1, GridWidth]. An oversized leaf is still placed, never clipped.
func NewLeaf(typ string, width, height int, props PropsFunc) *Leaf {
	return &Leaf{typ: typ, width: width, height: height, props: props}
}

// Kind returns KindLeaf.
func (l *Leaf) Kind() Kind { return KindLeaf }

// Width returns the leaf's width in grid units.
func (l *Leaf) Width() int { return l.width }

// Height returns the leaf's height in grid units.
func (l *Leaf) Height() int { return l.height }

// Type returns the record type emitted for this leaf.
func (l *Leaf) Type() string { return l.typ }

// Place appends exactly one record at (x, y). If the property producer
// fails, no record is appended and the error is returned as-is.
func (l *Leaf) Place(out *[]Positioned, x, y int, env Env) error {
	var props any
	if l.props != nil {
		p, err := l.props(env)
		if err != nil {
			return err
		}
		props = p
	}
	*out = append(*out, Positioned{
		Type:       l.typ,
		X:          x,
		Y:          y,
		Width:      l.width,
		Height:     l.height,
		Properties: props,
	})
	return nil
}
