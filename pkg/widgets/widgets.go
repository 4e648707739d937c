// Package widgets provides the concrete leaf widgets placed on the dashboard
// grid: text panels, metric graphs, single-value panels, alarm status panels,
// and spacers. Each widget declares its grid size and produces the opaque
// properties object for its record; positioning is entirely the concern of
// [github.com/gridboard/gridboard/pkg/grid].
package widgets

import (
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Default widget sizes in grid units.
const (
	DefaultWidth      = 6
	DefaultHeight     = 6
	DefaultTextHeight = 2
)

// clampSize applies defaults and clamps the width into [1, GridWidth].
// Height has no fixed maximum.
func clampSize(w, h, defaultW, defaultH int) (int, int) {
	if w == 0 {
		w = defaultW
	}
	if h == 0 {
		h = defaultH
	}
	if w < 1 {
		w = 1
	}
	if w > grid.GridWidth {
		w = grid.GridWidth
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// TextOptions configures a markdown text panel.
type TextOptions struct {
	// Markdown is the panel content.
	Markdown string

	// Width and Height in grid units. Defaults: 6x2.
	Width  int
	Height int
}

// NewText creates a text panel widget ("type": "text").
func NewText(o TextOptions) *grid.Leaf {
	w, h := clampSize(o.Width, o.Height, DefaultWidth, DefaultTextHeight)
	markdown := o.Markdown
	return grid.NewLeaf("text", w, h, func(grid.Env) (any, error) {
		return map[string]any{"markdown": markdown}, nil
	})
}

// MetricOptions configures a metric graph panel.
type MetricOptions struct {
	// Title shown above the graph.
	Title string

	// Metrics to plot. Each entry is a namespace, a metric name, and then
	// alternating dimension name/value pairs, matching the backend's
	// metrics array format.
	Metrics [][]string

	// Period in seconds between datapoints. Default 300.
	Period int

	// Stat is the aggregation statistic. Default "Average".
	Stat string

	// Region overrides the environment region for this panel only.
	Region string

	// Stacked renders the series as a stacked area graph.
	Stacked bool

	// Width and Height in grid units. Defaults: 6x6.
	Width  int
	Height int
}

// NewMetric creates a time-series metric graph widget ("type": "metric").
// The panel's region resolves at placement time: the explicit option wins,
// otherwise the environment region is used.
func NewMetric(o MetricOptions) *grid.Leaf {
	w, h := clampSize(o.Width, o.Height, DefaultWidth, DefaultHeight)
	return grid.NewLeaf("metric", w, h, metricProps(o, "timeSeries"))
}

// NewSingleValue creates a single-value metric widget ("type": "metric",
// "view": "singleValue") showing the most recent datapoint.
func NewSingleValue(o MetricOptions) *grid.Leaf {
	w, h := clampSize(o.Width, o.Height, DefaultWidth, 3)
	return grid.NewLeaf("metric", w, h, metricProps(o, "singleValue"))
}

// metricProps builds the shared properties producer for metric panels.
func metricProps(o MetricOptions, view string) grid.PropsFunc {
	return func(env grid.Env) (any, error) {
		if len(o.Metrics) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"metric widget %q has no metrics", o.Title)
		}
		region := o.Region
		if region == "" {
			region = env.Region
		}
		period := o.Period
		if period == 0 {
			period = 300
		}
		stat := o.Stat
		if stat == "" {
			stat = "Average"
		}
		props := map[string]any{
			"view":    view,
			"region":  region,
			"metrics": o.Metrics,
			"period":  period,
			"stat":    stat,
		}
		if o.Title != "" {
			props["title"] = o.Title
		}
		if o.Stacked {
			props["stacked"] = true
		}
		return props, nil
	}
}

// AlarmOptions configures an alarm status panel.
type AlarmOptions struct {
	// Title shown above the panel.
	Title string

	// Alarms is the list of alarm identifiers to display.
	Alarms []string

	// Region overrides the environment region for this panel only.
	Region string

	// Width and Height in grid units. Defaults: 6x6.
	Width  int
	Height int
}

// NewAlarm creates an alarm status widget ("type": "alarm").
func NewAlarm(o AlarmOptions) *grid.Leaf {
	w, h := clampSize(o.Width, o.Height, DefaultWidth, DefaultHeight)
	return grid.NewLeaf("alarm", w, h, func(env grid.Env) (any, error) {
		if len(o.Alarms) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"alarm widget %q has no alarms", o.Title)
		}
		region := o.Region
		if region == "" {
			region = env.Region
		}
		props := map[string]any{
			"region": region,
			"alarms": o.Alarms,
		}
		if o.Title != "" {
			props["title"] = o.Title
		}
		return props, nil
	})
}

// Spacer occupies grid space without emitting a record. It pushes
// neighboring widgets apart inside rows and columns.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of the given size. Zero values default to 1.
func NewSpacer(width, height int) *Spacer {
	w, h := clampSize(width, height, 1, 1)
	return &Spacer{width: w, height: h}
}

// Kind returns grid.KindLeaf.
func (s *Spacer) Kind() grid.Kind { return grid.KindLeaf }

// Width returns the spacer's width in grid units.
func (s *Spacer) Width() int { return s.width }

// Height returns the spacer's height in grid units.
func (s *Spacer) Height() int { return s.height }

// Place emits nothing; the spacer only advances the layout cursor.
func (s *Spacer) Place(out *[]grid.Positioned, x, y int, env grid.Env) error {
	return nil
}
