package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
)

// detailState holds the read-only quiz detail screen. A missing quiz is a
// rendered state of its own, not an error.
type detailState struct {
	id       int64
	quiz     *dto.QuizResponse
	notFound bool
}

func (m Model) updateDetail(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case quizLoadedMsg:
		m.loading = false
		m.detail.quiz = typed.Quiz
		return m, nil
	case quizNotFoundMsg:
		m.loading = false
		m.detail.notFound = true
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "enter":
			m.screen = screenList
			m.status = ""
			return m, nil
		}
	}
	return m, nil
}

func (m Model) detailView() string {
	footer := stylize("esc back", m.noColor, helpStyle)

	switch {
	case m.loading:
		return joinScreen(m, stylize("Quiz", m.noColor, titleStyle),
			stylize("Loading...", m.noColor, subtleStyle), footer)
	case m.detail.notFound:
		return joinScreen(m, stylize("Quiz not found", m.noColor, titleStyle),
			stylize(fmt.Sprintf("No quiz exists with id %d.", m.detail.id), m.noColor, subtleStyle),
			footer)
	case m.detail.quiz == nil:
		return joinScreen(m, stylize("Quiz", m.noColor, titleStyle), "", footer)
	}

	quiz := m.detail.quiz
	header := stylize(quiz.Title, m.noColor, titleStyle)
	blocks := make([]string, 0, len(quiz.Questions))
	for i, question := range quiz.Questions {
		blocks = append(blocks, m.renderQuestion(i+1, question))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return joinScreen(m, header, body, footer)
}

// renderQuestion shows one question with a disabled answer preview matching
// its type.
func (m Model) renderQuestion(number int, question dto.QuestionResponse) string {
	prompt := fmt.Sprintf("%d. %s", number, question.Text)

	var preview string
	switch domain.QuestionType(question.Type) {
	case domain.QuestionTypeBoolean:
		preview = "   ( ) True   ( ) False"
	case domain.QuestionTypeInput:
		preview = "   [ your answer ]"
	case domain.QuestionTypeCheckbox:
		preview = m.renderCheckboxPreview(question)
	default:
		preview = ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		prompt,
		stylize(preview, m.noColor, subtleStyle),
		"")
}

func (m Model) renderCheckboxPreview(question dto.QuestionResponse) string {
	if question.Options == nil {
		return ""
	}
	values := domain.OptionValues(*question.Options)
	lines := make([]string, 0, len(values))
	for _, value := range values {
		lines = append(lines, "   [ ] "+value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
