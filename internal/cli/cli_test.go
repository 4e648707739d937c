package cli

import (
	"io"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"json"}},
		{"text", []string{"text"}},
		{"json,svg", []string{"json", "svg"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "dash.toml", "dash"},
		{"out.json", "dash.toml", "out"},
		{"out.svg", "dash.toml", "out"},
		{"custom", "dash.toml", "custom"},
		{"report.backup", "dash.toml", "report.backup"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"build":      false,
		"preview":    false,
		"inspect":    false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestPreviewModelScroll(t *testing.T) {
	m := newPreviewModel("test", "a\nb\nc\nd\ne\nf\n", 3)
	m.height = 2

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(previewModel)
	if m.offset != 1 {
		t.Errorf("offset after j = %d, want 1", m.offset)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(previewModel)
	if m.offset != m.maxOffset() {
		t.Errorf("offset after G = %d, want %d", m.offset, m.maxOffset())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(previewModel)
	if m.offset != 0 {
		t.Errorf("offset after g = %d, want 0", m.offset)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := newPreviewModel("test", "a\n", 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}
