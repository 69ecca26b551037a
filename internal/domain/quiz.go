package domain

import (
	"strings"
	"time"
)

// QuestionType is the answer type of a question.
type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "boolean"
	QuestionTypeInput    QuestionType = "input"
	QuestionTypeCheckbox QuestionType = "checkbox"
)

// IsValid reports whether t is one of the known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeBoolean, QuestionTypeInput, QuestionTypeCheckbox:
		return true
	}
	return false
}

// OptionsSeparator joins checkbox option values into the single stored string.
const OptionsSeparator = ","

// Quiz represents a titled, ordered collection of questions.
type Quiz struct {
	ID        int64
	Title     string
	Questions []Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuiz creates a new Quiz instance.
func NewQuiz(title string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:     title,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the quiz.
func (q *Quiz) Validate() error {
	if len(strings.TrimSpace(q.Title)) < MinTitleLength {
		return NewValidationError("title is required (min 3 characters)")
	}
	if len(q.Questions) == 0 {
		return NewValidationError("at least one question is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Question is one quiz item with a text prompt and an answer type.
// Options holds the comma-joined choice values and is only meaningful
// for checkbox questions.
type Question struct {
	ID       int64
	QuizID   int64
	Text     string
	Type     QuestionType
	Options  string
	Position int
}

// Validate validates the question.
func (q *Question) Validate() error {
	if len(strings.TrimSpace(q.Text)) < MinQuestionTextLength {
		return NewValidationError("question text is required (min 5 characters)")
	}
	if !q.Type.IsValid() {
		return NewValidationError("unknown question type: " + string(q.Type))
	}
	if q.Type == QuestionTypeCheckbox && len(OptionValues(q.Options)) < MinCheckboxOptions {
		return NewValidationError("checkbox questions need at least 2 options")
	}
	return nil
}

// OptionValues returns the question's selectable choices, in authoring order.
func (q *Question) OptionValues() []string {
	return OptionValues(q.Options)
}

// OptionValues splits a stored comma-joined options string into its
// constituent trimmed values, discarding empties.
func OptionValues(options string) []string {
	if options == "" {
		return nil
	}
	parts := strings.Split(options, OptionsSeparator)
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// Authoring limits enforced at validation time.
const (
	MinTitleLength        = 3
	MinQuestionTextLength = 5
	MinCheckboxOptions    = 2
)
