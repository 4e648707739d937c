// Package definition loads declarative dashboard definitions from TOML files
// and turns them into widget trees for the layout engine.
//
// A definition declares either explicit rows:
//
//	title  = "Service overview"
//	start  = "-PT3H"
//	region = "eu-west-1"
//
//	[[rows]]
//	  [[rows.widgets]]
//	  type     = "text"
//	  markdown = "# Service overview"
//	  width    = 24
//	  height   = 2
//
//	[[rows.widgets]]
//	  type    = "metric"
//	  title   = "CPU"
//	  metrics = [["AWS/EC2", "CPUUtilization"]]
//
// or a flat widget list via top-level [[widgets]] tables, which the body
// builder packs into a single flowing row. Declaring both forms at once is
// rejected, mirroring the engine's all-rows-or-none contract.
package definition

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/widgets"
)

// Known widget type names accepted in definitions.
const (
	TypeText        = "text"
	TypeMetric      = "metric"
	TypeSingleValue = "single_value"
	TypeAlarm       = "alarm"
	TypeSpacer      = "spacer"
)

// Definition is a parsed dashboard definition.
type Definition struct {
	// Title names the dashboard. It is not part of the body document; the
	// registry and CLI use it for display.
	Title string `toml:"title"`

	// Start and End bound the displayed time range (ISO-8601 or relative
	// "-P..." for Start).
	Start string `toml:"start"`
	End   string `toml:"end"`

	// PeriodOverride is "auto", "inherit", or empty.
	PeriodOverride string `toml:"period_override"`

	// Region is the default region for region-aware widgets. A region
	// passed at build time takes precedence.
	Region string `toml:"region"`

	// Rows is the explicit row form. Mutually exclusive with Widgets.
	Rows []RowDef `toml:"rows"`

	// Widgets is the flat form: one flowing row of widgets.
	Widgets []WidgetDef `toml:"widgets"`
}

// RowDef is one explicit dashboard row.
type RowDef struct {
	Widgets []WidgetDef `toml:"widgets"`
}

// WidgetDef is one widget declaration. Type selects the variant; the other
// fields apply depending on the type.
type WidgetDef struct {
	Type   string `toml:"type"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// Text widgets
	Markdown string `toml:"markdown"`

	// Metric, single-value, and alarm widgets
	Title   string     `toml:"title"`
	Metrics [][]string `toml:"metrics"`
	Period  int        `toml:"period"`
	Stat    string     `toml:"stat"`
	Region  string     `toml:"region"`
	Stacked bool       `toml:"stacked"`
	Alarms  []string   `toml:"alarms"`
}

// Parse decodes a TOML definition and validates its shape.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "parsing definition")
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}
	return Parse(data)
}

func (d *Definition) validate() error {
	if len(d.Rows) > 0 && len(d.Widgets) > 0 {
		return errors.New(errors.ErrCodeInvalidDefinition,
			"definition declares both [[rows]] and [[widgets]]; use one form")
	}
	switch d.PeriodOverride {
	case "", string(grid.PeriodAuto), string(grid.PeriodInherit):
	default:
		return errors.New(errors.ErrCodeInvalidDefinition,
			"period_override must be %q or %q, got %q",
			grid.PeriodAuto, grid.PeriodInherit, d.PeriodOverride)
	}
	if err := errors.ValidateRegion(d.Region); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDefinition, err, "region")
	}
	for i, row := range d.Rows {
		for j, w := range row.Widgets {
			if err := w.validate(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDefinition, err,
					"rows[%d].widgets[%d]", i, j)
			}
		}
	}
	for i, w := range d.Widgets {
		if err := w.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDefinition, err, "widgets[%d]", i)
		}
	}
	return nil
}

func (w *WidgetDef) validate() error {
	switch w.Type {
	case TypeText, TypeMetric, TypeSingleValue, TypeAlarm, TypeSpacer:
	case "":
		return errors.New(errors.ErrCodeInvalidDefinition, "widget has no type")
	default:
		return errors.New(errors.ErrCodeInvalidDefinition, "unknown widget type %q", w.Type)
	}
	if w.Width < 0 || w.Width > grid.GridWidth {
		return errors.New(errors.ErrCodeInvalidDefinition,
			"width %d out of range [1, %d]", w.Width, grid.GridWidth)
	}
	if w.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDefinition, "height %d is negative", w.Height)
	}
	if err := errors.ValidateRegion(w.Region); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDefinition, err, "region")
	}
	return nil
}

// BodyInput converts the definition into engine input. Explicit rows become
// grid rows; the flat form is passed through as-is and the body builder
// wraps it into one synthetic row.
func (d *Definition) BodyInput() grid.BodyInput {
	in := grid.BodyInput{
		Start:          d.Start,
		End:            d.End,
		PeriodOverride: grid.PeriodOverride(d.PeriodOverride),
	}
	if len(d.Rows) > 0 {
		in.Widgets = make([]grid.Widget, 0, len(d.Rows))
		for _, row := range d.Rows {
			children := make([]grid.Widget, 0, len(row.Widgets))
			for _, w := range row.Widgets {
				children = append(children, w.build())
			}
			in.Widgets = append(in.Widgets, grid.NewRow(children...))
		}
		return in
	}
	in.Widgets = make([]grid.Widget, 0, len(d.Widgets))
	for _, w := range d.Widgets {
		in.Widgets = append(in.Widgets, w.build())
	}
	return in
}

// build creates the widget for a validated declaration.
func (w *WidgetDef) build() grid.Widget {
	switch w.Type {
	case TypeText:
		return widgets.NewText(widgets.TextOptions{
			Markdown: w.Markdown,
			Width:    w.Width,
			Height:   w.Height,
		})
	case TypeMetric:
		return widgets.NewMetric(w.metricOptions())
	case TypeSingleValue:
		return widgets.NewSingleValue(w.metricOptions())
	case TypeAlarm:
		return widgets.NewAlarm(widgets.AlarmOptions{
			Title:  w.Title,
			Alarms: w.Alarms,
			Region: w.Region,
			Width:  w.Width,
			Height: w.Height,
		})
	case TypeSpacer:
		return widgets.NewSpacer(w.Width, w.Height)
	}
	// validate() rejects unknown types before build runs.
	return nil
}

func (w *WidgetDef) metricOptions() widgets.MetricOptions {
	return widgets.MetricOptions{
		Title:   w.Title,
		Metrics: w.Metrics,
		Period:  w.Period,
		Stat:    w.Stat,
		Region:  w.Region,
		Stacked: w.Stacked,
		Width:   w.Width,
		Height:  w.Height,
	}
}
