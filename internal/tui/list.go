package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizhub/internal/dto"
)

// listState holds the quiz list screen: the fetched quizzes, the cursor, and
// whether a delete is waiting on confirmation.
type listState struct {
	quizzes       []dto.QuizResponse
	cursor        int
	confirmDelete bool
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case quizzesLoadedMsg:
		m.loading = false
		m.status = ""
		m.list.quizzes = typed.Quizzes
		m.list.clampCursor()
		return m, nil
	case quizDeletedMsg:
		// Drop the quiz locally instead of refetching the list.
		m.loading = false
		m.list.remove(typed.ID)
		m.list.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.list.confirmDelete {
			return m.updateListConfirm(typed)
		}
		return m.updateListKeys(typed)
	}
	return m, nil
}

func (m Model) updateListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case "down", "j":
		if m.list.cursor < len(m.list.quizzes)-1 {
			m.list.cursor++
		}
	case "enter":
		if quiz := m.list.selected(); quiz != nil {
			m.screen = screenDetail
			m.detail = detailState{id: quiz.ID}
			m.loading = true
			m.status = ""
			return m, fetchQuiz(m.client, quiz.ID)
		}
	case "n":
		m.screen = screenCreate
		m.create = newCreateState()
		m.status = ""
	case "d":
		if m.list.selected() != nil {
			m.list.confirmDelete = true
		}
	case "r":
		m.loading = true
		m.status = ""
		return m, fetchQuizzes(m.client)
	}
	return m, nil
}

func (m Model) updateListConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.list.confirmDelete = false
		if quiz := m.list.selected(); quiz != nil {
			m.loading = true
			return m, deleteQuiz(m.client, quiz.ID)
		}
	case "n", "esc":
		m.list.confirmDelete = false
	}
	return m, nil
}

func (m Model) listView() string {
	header := stylize("Quizzes", m.noColor, titleStyle)

	var body string
	switch {
	case m.loading:
		body = stylize("Loading...", m.noColor, subtleStyle)
	case len(m.list.quizzes) == 0:
		body = stylize("No quizzes yet. Press n to create one.", m.noColor, subtleStyle)
	default:
		body = m.renderQuizRows()
	}

	footer := stylize("enter view | n new | d delete | r refresh | q quit", m.noColor, helpStyle)
	if m.list.confirmDelete {
		if quiz := m.list.selected(); quiz != nil {
			footer = stylize(fmt.Sprintf("Delete %q? (y/n)", quiz.Title), m.noColor, errorStyle)
		}
	}

	return joinScreen(m, header, body, footer)
}

func (m Model) renderQuizRows() string {
	rows := make([]string, 0, len(m.list.quizzes))
	for i, quiz := range m.list.quizzes {
		marker := "  "
		line := fmt.Sprintf("%s (%d questions)", quiz.Title, len(quiz.Questions))
		if i == m.list.cursor {
			marker = stylize("> ", m.noColor, cursorStyle)
			line = stylize(line, m.noColor, selectedStyle)
		}
		rows = append(rows, marker+line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// selected returns the quiz under the cursor, or nil for an empty list.
func (s *listState) selected() *dto.QuizResponse {
	if s.cursor < 0 || s.cursor >= len(s.quizzes) {
		return nil
	}
	return &s.quizzes[s.cursor]
}

func (s *listState) remove(id int64) {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			return
		}
	}
}

func (s *listState) clampCursor() {
	if s.cursor >= len(s.quizzes) {
		s.cursor = len(s.quizzes) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// joinScreen stacks the screen regions with a status line when one is set.
func joinScreen(m Model, header, body, footer string) string {
	parts := []string{header, "", body, ""}
	if m.status != "" {
		parts = append(parts, stylize("Error: "+m.status, m.noColor, errorStyle))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
