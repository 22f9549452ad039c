package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/connerohnesorge/docparser/internal/config"
	"github.com/connerohnesorge/docparser/internal/docparser"
)

// InspectCmd opens an interactive Bubble Tea tree browser over the parsed
// document, letting a user walk the AST node by node instead of reading a
// flat Dump.
type InspectCmd struct {
	File string `arg:"" help:"Doc comment file to inspect" type:"path"`
}

// Run executes the inspect command.
func (c *InspectCmd) Run() error {
	cfg, err := loadProjectConfig()
	if err != nil {
		cfg = &config.Config{}
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	tree, diags := docparser.ParseDoc(c.File, 1, string(data), docparser.WithRegistry(seededRegistry(cfg)))

	model := newInspectModel(tree, diags)
	prog := tea.NewProgram(model)
	_, err = prog.Run()

	return err
}

// inspectRow is one flattened, indented line of the tree, with enough
// information to re-render it and to know which NodeID it points at.
type inspectRow struct {
	id      docparser.NodeID
	depth   int
	kind    string
	summary string
}

// inspectModel renders rows into a bubbles/viewport pane (spec §6's tree
// browser), following internal/ralph/tui.go's viewport-over-a-scrolling-pane
// convention: the pane owns the scroll window, the model only owns content
// and cursor position and keeps the cursor inside the pane's visible range.
type inspectModel struct {
	rows     []inspectRow
	cursor   int
	pane     viewport.Model
	ready    bool
	diags    []docparser.Diagnostic
	quitting bool
}

var (
	inspectCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	inspectKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	inspectHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// inspectHelpLines is the number of screen rows the help bar under the
// viewport occupies, subtracted from the window height handed to the pane.
const inspectHelpLines = 2

func newInspectModel(t *docparser.Tree, diags []docparser.Diagnostic) *inspectModel {
	m := &inspectModel{diags: diags}
	m.flatten(t, t.Root(), 0)

	return m
}

func (m *inspectModel) flatten(t *docparser.Tree, id docparser.NodeID, depth int) {
	m.rows = append(m.rows, inspectRow{
		id:      id,
		depth:   depth,
		kind:    t.Kind(id).String(),
		summary: nodeLine(t, id),
	})
	for _, child := range t.Children(id) {
		m.flatten(t, child, depth+1)
	}
}

// Init implements tea.Model.
func (m *inspectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		height := typed.Height - inspectHelpLines
		if !m.ready {
			m.pane = viewport.New(typed.Width, height)
			m.pane.YPosition = 0
			m.ready = true
		} else {
			m.pane.Width = typed.Width
			m.pane.Height = height
		}
		m.pane.SetContent(m.render())

		return m, nil

	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true

			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.followCursor()
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.followCursor()
		case "g":
			m.cursor = 0
			m.pane.GotoTop()
		case "G":
			m.cursor = len(m.rows) - 1
			m.pane.GotoBottom()
		}
		m.pane.SetContent(m.render())
	}

	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)

	return m, cmd
}

// followCursor scrolls the pane just enough to keep the cursor row inside
// its visible window, the manual analogue of the teacher's GotoBottom
// auto-scroll in internal/ralph/tui.go (there the viewport always tracks
// the latest line; here it tracks a user-moved cursor instead).
func (m *inspectModel) followCursor() {
	if m.cursor < m.pane.YOffset {
		m.pane.YOffset = m.cursor
	} else if m.cursor >= m.pane.YOffset+m.pane.Height {
		m.pane.YOffset = m.cursor - m.pane.Height + 1
	}
}

// View implements tea.Model.
func (m *inspectModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "initializing...\n"
	}

	var b strings.Builder
	b.WriteString(m.pane.View())
	b.WriteString("\n")
	b.WriteString(inspectHelpStyle.Render(fmt.Sprintf(
		"%d/%d nodes · %d diagnostics · j/k move · g/G top/bottom · q quit",
		m.cursor+1, len(m.rows), len(m.diags),
	)))

	return b.String()
}

// render produces the full, cursor-highlighted row listing handed to the
// viewport via SetContent; the pane itself owns clipping it to the visible
// window.
func (m *inspectModel) render() string {
	var b strings.Builder
	for i, row := range m.rows {
		line := fmt.Sprintf("%s%s %s",
			strings.Repeat("  ", row.depth),
			inspectKindStyle.Render(row.kind),
			row.summary,
		)
		if i == m.cursor {
			line = inspectCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}

	return b.String()
}

// nodeLine renders the same one-line payload summary printer.go's Dump
// uses, kept free of ANSI styling here since inspectModel styles the row
// as a whole.
func nodeLine(t *docparser.Tree, id docparser.NodeID) string {
	var b strings.Builder
	docparser.Dump(&b, t, id)

	first, _, _ := strings.Cut(b.String(), "\n")
	trimmed := strings.TrimLeft(first, " ")
	_, rest, found := strings.Cut(trimmed, " ")
	if !found {
		return ""
	}

	return rest
}
