// Package pipeline provides the load → build → render pipeline for
// gridboard dashboards.
//
// The pipeline is used by both the CLI and the registry server. By
// centralizing it, the two entry points share validation, defaults, cache
// behavior, and logging.
//
// # Stages
//
//  1. Load: parse a TOML dashboard definition
//  2. Build: normalize the widget list and lay the tree out on the grid
//  3. Render: serialize the body into the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  definitionTOML,
//	    Formats: []string{pipeline.FormatJSON},
//	})
//	doc := result.Artifacts[pipeline.FormatJSON]
package pipeline

import (
	"github.com/gridboard/gridboard/pkg/errors"
)

// Output format names.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, text, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Source is the raw TOML definition. Exactly one of Source and Path
	// must be set.
	Source []byte

	// Path is a definition file to load.
	Path string

	// Region overrides the definition's region for region-aware widgets.
	Region string

	// Formats selects the rendered outputs. Defaults to ["json"].
	Formats []string

	// Compact emits unindented JSON.
	Compact bool

	// Refresh bypasses the artifact cache.
	Refresh bool

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Source) == 0 && o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "definition source or path is required")
	}
	if len(o.Source) > 0 && o.Path != "" {
		return errors.New(errors.ErrCodeInvalidInput, "definition source and path are mutually exclusive")
	}
	if err := errors.ValidateRegion(o.Region); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}
