package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/definition"
	"github.com/gridboard/gridboard/pkg/pipeline"
	"github.com/gridboard/gridboard/pkg/render/sink"
)

// previewCommand creates the preview command for terminal dashboards.
func (c *CLI) previewCommand() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "preview [definition.toml]",
		Short: "Preview a dashboard layout in the terminal",
		Long: `Preview a dashboard layout in the terminal.

The preview command assembles the definition and displays the resulting
grid as an ASCII rendering in an interactive viewer. Use arrow keys or
j/k to scroll tall dashboards, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], region)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region applied to widgets without an explicit one")

	return cmd
}

func (c *CLI) runPreview(input, region string) error {
	def, err := definition.Load(input)
	if err != nil {
		return err
	}
	body, err := pipeline.NewRunner(nil, c.Logger).Build(def, region)
	if err != nil {
		return err
	}

	title := def.Title
	if title == "" {
		title = input
	}

	model := newPreviewModel(title, sink.RenderText(body), len(body.Widgets))
	_, err = tea.NewProgram(model).Run()
	return err
}

// Preview styles
var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewCanvasStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// previewModel is the bubbletea model for scrolling through a rendered
// dashboard.
type previewModel struct {
	title   string
	lines   []string
	widgets int
	offset  int
	height  int
}

func newPreviewModel(title, rendered string, widgets int) previewModel {
	return previewModel{
		title:   title,
		lines:   strings.Split(strings.TrimRight(rendered, "\n"), "\n"),
		widgets: widgets,
		height:  20,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		if m.height < 5 {
			m.height = 5
		}
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m previewModel) maxOffset() int {
	if len(m.lines) <= m.height {
		return 0
	}
	return len(m.lines) - m.height
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(previewTitleStyle.Render(m.title))
	b.WriteString(previewHelpStyle.Render(fmt.Sprintf("  %d widgets", m.widgets)))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(previewCanvasStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑/↓ scroll  q quit"
	if m.maxOffset() == 0 {
		help = "q quit"
	}
	b.WriteString(previewHelpStyle.Render(help))
	return b.String()
}
