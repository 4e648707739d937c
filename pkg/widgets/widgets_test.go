package widgets

import (
	"testing"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

func placeOne(t *testing.T, w grid.Widget, env grid.Env) grid.Positioned {
	t.Helper()
	out := make([]grid.Positioned, 0, 1)
	if err := w.Place(&out, 0, 0, env); err != nil {
		t.Fatalf("Place error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	return out[0]
}

func TestTextDefaults(t *testing.T) {
	w := NewText(TextOptions{Markdown: "# Title"})
	if w.Width() != DefaultWidth || w.Height() != DefaultTextHeight {
		t.Errorf("size %dx%d, want %dx%d", w.Width(), w.Height(), DefaultWidth, DefaultTextHeight)
	}

	rec := placeOne(t, w, grid.Env{})
	if rec.Type != "text" {
		t.Errorf("type = %q, want text", rec.Type)
	}
	props := rec.Properties.(map[string]any)
	if props["markdown"] != "# Title" {
		t.Errorf("markdown = %v", props["markdown"])
	}
}

func TestMetricRegionResolution(t *testing.T) {
	base := MetricOptions{
		Title:   "CPU",
		Metrics: [][]string{{"AWS/EC2", "CPUUtilization"}},
	}

	// Environment region applies when no override is set.
	rec := placeOne(t, NewMetric(base), grid.Env{Region: "eu-west-1"})
	props := rec.Properties.(map[string]any)
	if props["region"] != "eu-west-1" {
		t.Errorf("region = %v, want eu-west-1", props["region"])
	}

	// Explicit region wins over the environment.
	base.Region = "us-west-2"
	rec = placeOne(t, NewMetric(base), grid.Env{Region: "eu-west-1"})
	props = rec.Properties.(map[string]any)
	if props["region"] != "us-west-2" {
		t.Errorf("region = %v, want us-west-2", props["region"])
	}
}

func TestMetricDefaults(t *testing.T) {
	rec := placeOne(t, NewMetric(MetricOptions{
		Metrics: [][]string{{"AWS/Lambda", "Errors", "FunctionName", "ingest"}},
	}), grid.Env{Region: "eu-west-1"})

	props := rec.Properties.(map[string]any)
	if props["view"] != "timeSeries" {
		t.Errorf("view = %v", props["view"])
	}
	if props["period"] != 300 {
		t.Errorf("period = %v, want 300", props["period"])
	}
	if props["stat"] != "Average" {
		t.Errorf("stat = %v, want Average", props["stat"])
	}
	if _, ok := props["title"]; ok {
		t.Error("empty title should be omitted")
	}
}

func TestMetricWithoutMetricsFails(t *testing.T) {
	out := make([]grid.Positioned, 0)
	err := NewMetric(MetricOptions{Title: "empty"}).Place(&out, 0, 0, grid.Env{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if len(out) != 0 {
		t.Error("no record should be appended on failure")
	}
}

func TestSingleValueView(t *testing.T) {
	rec := placeOne(t, NewSingleValue(MetricOptions{
		Metrics: [][]string{{"AWS/SQS", "ApproximateNumberOfMessagesVisible", "QueueName", "jobs"}},
	}), grid.Env{})
	props := rec.Properties.(map[string]any)
	if props["view"] != "singleValue" {
		t.Errorf("view = %v, want singleValue", props["view"])
	}
}

func TestAlarm(t *testing.T) {
	rec := placeOne(t, NewAlarm(AlarmOptions{
		Title:  "Prod alarms",
		Alarms: []string{"arn:alarm:high-cpu"},
	}), grid.Env{Region: "ap-south-1"})

	if rec.Type != "alarm" {
		t.Errorf("type = %q, want alarm", rec.Type)
	}
	props := rec.Properties.(map[string]any)
	if props["region"] != "ap-south-1" {
		t.Errorf("region = %v", props["region"])
	}

	out := make([]grid.Positioned, 0)
	err := NewAlarm(AlarmOptions{Title: "empty"}).Place(&out, 0, 0, grid.Env{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT for alarm without alarms, got %v", err)
	}
}

func TestSpacerOccupiesWithoutEmitting(t *testing.T) {
	sp := NewSpacer(6, 4)
	if sp.Width() != 6 || sp.Height() != 4 {
		t.Errorf("spacer size %dx%d, want 6x4", sp.Width(), sp.Height())
	}

	out := make([]grid.Positioned, 0)
	if err := sp.Place(&out, 0, 0, grid.Env{}); err != nil {
		t.Fatalf("Place error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("spacer emitted %d records, want 0", len(out))
	}

	// Inside a row the spacer still pushes the next widget right.
	row := grid.NewRow(sp, NewText(TextOptions{Markdown: "x", Width: 6, Height: 4}))
	out = out[:0]
	if err := row.Place(&out, 0, 0, grid.Env{}); err != nil {
		t.Fatalf("row Place error: %v", err)
	}
	if len(out) != 1 || out[0].X != 6 {
		t.Fatalf("text after spacer at x=%d, want 6", out[0].X)
	}
}

func TestSizeClamping(t *testing.T) {
	w := NewText(TextOptions{Markdown: "x", Width: 99, Height: 0})
	if w.Width() != grid.GridWidth {
		t.Errorf("width = %d, want clamped to %d", w.Width(), grid.GridWidth)
	}
	if w.Height() < 1 {
		t.Errorf("height = %d, want at least 1", w.Height())
	}
}
