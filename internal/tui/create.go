package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizhub/internal/domain"
	"quizhub/internal/form"
)

type fieldKind int

const (
	fieldTitle fieldKind = iota
	fieldQuestionText
	fieldQuestionType
	fieldOption
)

// fieldRef addresses one editable field of the draft. Question fields carry
// the draft's stable identity, so the focus survives structural edits.
type fieldRef struct {
	kind        fieldKind
	questionID  int
	optionIndex int
}

// createState holds the quiz creation screen: the draft being authored, a
// shared text input bound to the focused field, and the last failed-submit
// notice.
type createState struct {
	draft      *form.QuizDraft
	input      textinput.Model
	fields     []fieldRef
	focus      int
	notice     *form.Notice
	submitting bool
}

var typeCycle = []domain.QuestionType{
	domain.QuestionTypeBoolean,
	domain.QuestionTypeInput,
	domain.QuestionTypeCheckbox,
}

func newCreateState() createState {
	input := textinput.New()
	input.CharLimit = 200
	input.Focus()

	s := createState{
		draft: form.NewQuizDraft(),
		input: input,
	}
	s.rebuildFields()
	s.loadFocused()
	return s
}

func (m Model) updateCreate(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case quizCreatedMsg:
		m.screen = screenList
		m.loading = true
		m.status = ""
		return m, fetchQuizzes(m.client)
	case tea.KeyMsg:
		return m.updateCreateKeys(typed)
	}
	return m, nil
}

func (m Model) updateCreateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.create.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.status = ""
		return m, nil
	case "tab", "down", "enter":
		m.create.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.create.moveFocus(-1)
		return m, nil
	case "ctrl+a":
		m.create.draft.AddQuestion()
		m.create.rebuildFields()
		return m, nil
	case "ctrl+d":
		m.create.removeFocusedQuestion()
		return m, nil
	case "ctrl+o":
		m.create.addOptionToFocused()
		return m, nil
	case "ctrl+x":
		m.create.removeFocusedOption()
		return m, nil
	case "ctrl+s":
		return m.submitCreate()
	}

	field := m.create.focused()
	if field.kind == fieldQuestionType {
		switch msg.String() {
		case "left", "h":
			m.create.cycleType(-1)
		case "right", "l", " ":
			m.create.cycleType(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.create.input, cmd = m.create.input.Update(msg)
	m.create.storeFocused()
	return m, cmd
}

// submitCreate validates the draft. Violations keep the screen and its state
// as they are and surface a single notice; a clean draft goes to the API.
func (m Model) submitCreate() (Model, tea.Cmd) {
	errs := m.create.draft.Validate()
	if len(errs) > 0 {
		notice := form.Classify(errs)
		m.create.notice = &notice
		return m, nil
	}
	m.create.notice = nil
	m.create.submitting = true
	return m, createQuiz(m.client, m.create.draft.Serialize())
}

// rebuildFields recomputes the navigable field list from the draft. Option
// fields only exist while their question is a checkbox.
func (s *createState) rebuildFields() {
	fields := []fieldRef{{kind: fieldTitle}}
	for _, q := range s.draft.Questions() {
		fields = append(fields,
			fieldRef{kind: fieldQuestionText, questionID: q.ID()},
			fieldRef{kind: fieldQuestionType, questionID: q.ID()},
		)
		if q.Type == domain.QuestionTypeCheckbox {
			for i := range q.Options {
				fields = append(fields, fieldRef{kind: fieldOption, questionID: q.ID(), optionIndex: i})
			}
		}
	}
	s.fields = fields
	if s.focus >= len(s.fields) {
		s.focus = len(s.fields) - 1
	}
	s.loadFocused()
}

func (s *createState) focused() fieldRef {
	return s.fields[s.focus]
}

func (s *createState) moveFocus(delta int) {
	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	s.loadFocused()
}

// loadFocused binds the shared text input to the focused field's current
// value. Type fields have no text backing, so the input is blurred there.
func (s *createState) loadFocused() {
	field := s.focused()
	if field.kind == fieldQuestionType {
		s.input.Blur()
		return
	}
	s.input.SetValue(s.valueOf(field))
	s.input.CursorEnd()
	s.input.Focus()
}

// storeFocused writes the text input back into the draft.
func (s *createState) storeFocused() {
	field := s.focused()
	value := s.input.Value()
	switch field.kind {
	case fieldTitle:
		s.draft.Title = value
	case fieldQuestionText:
		s.draft.SetQuestionText(field.questionID, value)
	case fieldOption:
		s.draft.SetOption(field.questionID, field.optionIndex, value)
	}
}

func (s *createState) valueOf(field fieldRef) string {
	switch field.kind {
	case fieldTitle:
		return s.draft.Title
	case fieldQuestionText:
		if q := s.questionByID(field.questionID); q != nil {
			return q.Text
		}
	case fieldOption:
		if q := s.questionByID(field.questionID); q != nil && field.optionIndex < len(q.Options) {
			return q.Options[field.optionIndex].Value
		}
	}
	return ""
}

func (s *createState) questionByID(id int) *form.QuestionDraft {
	questions := s.draft.Questions()
	for i := range questions {
		if questions[i].ID() == id {
			return &questions[i]
		}
	}
	return nil
}

func (s *createState) cycleType(delta int) {
	field := s.focused()
	q := s.questionByID(field.questionID)
	if q == nil {
		return
	}
	current := 0
	for i, t := range typeCycle {
		if q.Type == t {
			current = i
			break
		}
	}
	next := typeCycle[(current+delta+len(typeCycle))%len(typeCycle)]
	s.draft.SetQuestionType(field.questionID, next)
	s.rebuildFields()
}

// removeFocusedQuestion drops the question owning the focused field. The
// last remaining question cannot be removed.
func (s *createState) removeFocusedQuestion() {
	field := s.focused()
	if field.kind == fieldTitle || s.draft.Len() <= 1 {
		return
	}
	s.draft.RemoveQuestion(field.questionID)
	s.rebuildFields()
}

func (s *createState) addOptionToFocused() {
	field := s.focused()
	q := s.questionByID(field.questionID)
	if q == nil || q.Type != domain.QuestionTypeCheckbox {
		return
	}
	s.draft.AddOption(field.questionID)
	s.rebuildFields()
}

func (s *createState) removeFocusedOption() {
	field := s.focused()
	if field.kind != fieldOption {
		return
	}
	s.draft.RemoveOption(field.questionID, field.optionIndex)
	s.rebuildFields()
}

func (m Model) createView() string {
	header := stylize("New Quiz", m.noColor, titleStyle)

	lines := make([]string, 0, len(m.create.fields)+4)
	for i, field := range m.create.fields {
		lines = append(lines, m.renderField(i, field))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)

	footer := stylize(
		"tab next | ctrl+a add question | ctrl+d remove question | ctrl+o add option | ctrl+x remove option | ctrl+s save | esc back",
		m.noColor, helpStyle)
	if m.create.submitting {
		footer = stylize("Saving...", m.noColor, subtleStyle)
	}

	parts := []string{header, "", body, ""}
	if m.create.notice != nil {
		parts = append(parts,
			stylize(m.create.notice.Title, m.noColor, noticeStyle),
			stylize(m.create.notice.Description, m.noColor, subtleStyle),
			"")
	}
	if m.status != "" {
		parts = append(parts, stylize("Error: "+m.status, m.noColor, errorStyle), "")
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderField(index int, field fieldRef) string {
	focused := index == m.create.focus

	label := m.fieldLabel(field)
	var value string
	switch {
	case field.kind == fieldQuestionType:
		q := m.create.questionByID(field.questionID)
		if q != nil {
			value = "< " + string(q.Type) + " >"
		}
	case focused:
		value = m.create.input.View()
	default:
		value = m.create.valueOf(field)
	}

	line := fmt.Sprintf("%s %s", label, value)
	if focused {
		return stylize("> ", m.noColor, cursorStyle) + line
	}
	return "  " + line
}

func (m Model) fieldLabel(field fieldRef) string {
	switch field.kind {
	case fieldTitle:
		return "Title:"
	case fieldQuestionText:
		return fmt.Sprintf("Q%d text:", m.questionNumber(field.questionID))
	case fieldQuestionType:
		return fmt.Sprintf("Q%d type:", m.questionNumber(field.questionID))
	case fieldOption:
		return fmt.Sprintf("Q%d option %d:", m.questionNumber(field.questionID), field.optionIndex+1)
	}
	return ""
}

// questionNumber maps a draft identity to its 1-based display position.
func (m Model) questionNumber(id int) int {
	for i, q := range m.create.draft.Questions() {
		if q.ID() == id {
			return i + 1
		}
	}
	return 0
}
