package browse

import (
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jeeval/internal/runner"
)

// Model is an interactive viewer for a graded run.
type Model struct {
	state   State
	table   table.Model
	noColor bool
}

// Options configures the viewer.
type Options struct {
	NoColor bool
}

// NewModel constructs a viewer for a graded run.
func NewModel(results runner.Results, opts Options) Model {
	state := NewState(results)
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForState(state, opts.NoColor)),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{state: state, table: t, noColor: opts.NoColor}
}

// Init has nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.state.Detail {
				m.state.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if _, ok := m.state.Selected(m.table.Cursor()); ok {
				m.state.Detail = !m.state.Detail
			}
			return m, nil
		case "tab":
			m.state = NextFilter(m.state)
			m.table.SetRows(rowsForState(m.state, m.noColor))
			m.table.SetCursor(0)
			return m, nil
		}
	}
	if m.state.Detail {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m Model) View() string {
	header := renderHeader(m.state.Results, m.noColor)
	summary := renderSummary(m.state.Results.Summary, m.noColor)
	footer := renderFooter(m.state, m.noColor)
	if m.state.Detail {
		if record, ok := m.state.Selected(m.table.Cursor()); ok {
			return lipgloss.JoinVertical(lipgloss.Left, header, summary, renderDetail(record, m.noColor), footer)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, summary, m.table.View(), footer)
}

// Run starts the viewer on the given terminal streams and blocks until it exits.
func Run(results runner.Results, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(NewModel(results, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
