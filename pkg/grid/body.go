package grid

import (
	"github.com/gridboard/gridboard/pkg/errors"
)

// PeriodOverride controls how the backend applies the dashboard time period
// to individual widgets.
type PeriodOverride string

// Valid period override values. The empty string omits the field.
const (
	PeriodAuto    PeriodOverride = "auto"
	PeriodInherit PeriodOverride = "inherit"
)

// BodyInput is the user-supplied input to [BuildBody]: a flat widget list
// plus the dashboard-level scalar fields.
type BodyInput struct {
	// Start of the displayed time range, ISO-8601 or a relative "-P..."
	// duration. Optional.
	Start string

	// End of the displayed time range, ISO-8601. Only meaningful when
	// Start is set. Optional.
	End string

	// PeriodOverride selects "auto" or "inherit" period handling.
	// Optional.
	PeriodOverride PeriodOverride

	// Widgets is the top-level widget list, at most MaxWidgets entries.
	// The list must be homogeneous: either every entry is a Row or none
	// is. A non-row list is treated as a single row of widgets.
	Widgets []Widget
}

// Body is the assembled dashboard document consumed by the rendering
// backend.
type Body struct {
	Start          string       `json:"start,omitempty"`
	End            string       `json:"end,omitempty"`
	PeriodOverride string       `json:"periodOverride,omitempty"`
	Widgets        []Positioned `json:"widgets"`
}

// BuildBody validates and normalizes the widget list, lays the tree out at
// origin (0, 0), and merges the flattened records with the scalar fields.
//
// Validation failures are reported before any layout work runs:
//   - errors.ErrCodeWidgetCount when the list exceeds MaxWidgets
//   - errors.ErrCodeMixedWidgets when rows and non-rows are mixed
//
// Layout itself cannot fail; the only error past validation is a leaf
// property producer failing, which is returned unchanged. On any error no
// partial body is returned.
func BuildBody(in BodyInput, env Env) (Body, error) {
	if len(in.Widgets) > MaxWidgets {
		return Body{}, errors.New(errors.ErrCodeWidgetCount,
			"dashboard has %d widgets, the maximum is %d", len(in.Widgets), MaxWidgets)
	}

	rows := in.Widgets
	if len(in.Widgets) > 0 {
		// The first entry decides the shape of the list; every other
		// entry must match it. Guessing which widgets were meant to be
		// rows would silently change the layout, so a mixed list is
		// rejected instead.
		isRowList := in.Widgets[0].Kind() == KindRow
		for i, w := range in.Widgets[1:] {
			if (w.Kind() == KindRow) != isRowList {
				return Body{}, errors.New(errors.ErrCodeMixedWidgets,
					"widget %d is a %s but widget 0 is a %s: top-level widgets must be all rows or no rows",
					i+1, w.Kind(), in.Widgets[0].Kind())
			}
		}
		if !isRowList {
			rows = []Widget{NewRow(in.Widgets...)}
		}
	}

	root := NewColumn(rows...)
	out := make([]Positioned, 0, len(in.Widgets))
	if err := root.Place(&out, 0, 0, env); err != nil {
		return Body{}, err
	}

	return Body{
		Start:          in.Start,
		End:            in.End,
		PeriodOverride: string(in.PeriodOverride),
		Widgets:        out,
	}, nil
}
