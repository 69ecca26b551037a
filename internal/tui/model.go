// Package tui is the terminal front end for the quiz API. It renders three
// screens over one Bubble Tea model: the quiz list, a read-only quiz detail,
// and the quiz creation form.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/client"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
)

// Model is the root Bubble Tea model. All API calls run as commands; the
// model itself never blocks.
type Model struct {
	client  *client.QuizClient
	screen  screen
	width   int
	noColor bool
	loading bool
	status  string

	list   listState
	detail detailState
	create createState
}

// Options configures the TUI model.
type Options struct {
	NoColor bool
}

// NewModel constructs the root model for a quiz API client.
func NewModel(c *client.QuizClient, opts Options) Model {
	return Model{
		client:  c,
		screen:  screenList,
		noColor: opts.NoColor,
		loading: true,
		create:  newCreateState(),
	}
}

// Init fetches the quiz list.
func (m Model) Init() tea.Cmd {
	return fetchQuizzes(m.client)
}

// Update routes messages to the active screen. Quit and API failures are
// handled here so every screen behaves the same way.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case errMsg:
		m.loading = false
		m.create.submitting = false
		m.status = typed.Err.Error()
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreate(msg)
	default:
		return m.updateList(msg)
	}
}

// View renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screenDetail:
		return m.detailView()
	case screenCreate:
		return m.createView()
	default:
		return m.listView()
	}
}
