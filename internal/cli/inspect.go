package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/definition"
	"github.com/gridboard/gridboard/pkg/pipeline"
)

// inspectCommand creates the inspect command for examining definitions.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		region   string
		showTree bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [definition.toml]",
		Short: "Show layout statistics for a dashboard definition",
		Long: `Show layout statistics for a dashboard definition.

The inspect command assembles the definition without writing any output
files and prints the resulting grid dimensions and widget counts. With
--tree it also prints the widget tree in Graphviz DOT format, which can
be piped into dot or rendered with 'build --format svg'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], region, showTree)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region applied to widgets without an explicit one")
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the widget tree in DOT format")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, region string, showTree bool) error {
	def, err := definition.Load(input)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	body, err := runner.Build(def, region)
	if err != nil {
		return err
	}

	width, height := 0, 0
	types := map[string]int{}
	for _, w := range body.Widgets {
		if right := w.X + w.Width; right > width {
			width = right
		}
		if bottom := w.Y + w.Height; bottom > height {
			height = bottom
		}
		types[w.Type]++
	}

	title := def.Title
	if title == "" {
		title = input
	}
	printKeyValue("Dashboard", title)
	printKeyValue("Widgets", fmt.Sprintf("%d", len(body.Widgets)))
	printKeyValue("Grid", fmt.Sprintf("%dx%d", width, height))
	for _, typ := range slices.Sorted(maps.Keys(types)) {
		printDetail("%-14s %d", typ, types[typ])
	}

	if showTree {
		result, err := runner.Execute(cmd.Context(), pipeline.Options{
			Path:    input,
			Region:  region,
			Formats: []string{pipeline.FormatDOT},
		})
		if err != nil {
			return err
		}
		printNewline()
		fmt.Fprint(cmd.OutOrStdout(), string(result.Artifacts[pipeline.FormatDOT]))
	}
	return nil
}
