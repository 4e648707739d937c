package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/pipeline"
)

// buildCommand creates the build command for assembling dashboard bodies.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		region     string
		compact    bool
		refresh    bool
		noCache    bool
		stdout     bool
	)

	cmd := &cobra.Command{
		Use:   "build [definition.toml]",
		Short: "Assemble a dashboard definition into its grid layout",
		Long: `Assemble a dashboard definition into its grid layout.

The build command loads a TOML definition, lays out its widgets on the
24-column grid, and writes the requested output formats. The default
format is the flattened JSON dashboard body; text renders an ASCII
preview, dot and svg render the widget tree structure.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runBuild(cmd, args[0], buildParams{
				formats: formats,
				output:  output,
				region:  region,
				compact: compact,
				refresh: refresh,
				noCache: noCache,
				stdout:  stdout,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), text, dot, svg (comma-separated)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "region applied to widgets without an explicit one")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON without indentation")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write the artifact to stdout instead of a file")

	return cmd
}

type buildParams struct {
	formats []string
	output  string
	region  string
	compact bool
	refresh bool
	noCache bool
	stdout  bool
}

func (c *CLI) runBuild(cmd *cobra.Command, input string, p buildParams) error {
	runner, err := c.newRunner(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	spinner := newSpinnerWithContext(cmd.Context(), "Assembling dashboard...")
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Path:    input,
		Region:  p.region,
		Formats: p.formats,
		Compact: p.compact,
		Refresh: p.refresh,
	})
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Assembled %d widgets", result.Stats.WidgetCount))

	if p.stdout {
		if len(p.formats) > 1 {
			return fmt.Errorf("--stdout supports a single format, got %d", len(p.formats))
		}
		_, err := cmd.OutOrStdout().Write(result.Artifacts[p.formats[0]])
		return err
	}

	base := basePath(p.output, input)
	cached := false
	for _, format := range p.formats {
		path := base + "." + format
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		cached = cached || result.CacheHits[format]
	}

	title := result.Definition.Title
	if title == "" {
		title = input
	}
	printSuccess("Built %s", title)
	printStats(result.Stats.WidgetCount, len(result.Definition.Rows), cached)
	return nil
}
