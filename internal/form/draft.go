// Package form holds the quiz-authoring draft state: an ordered set of
// question drafts with stable identities, the add/remove/update transitions
// the creation screen drives, submit-time validation, and serialization into
// the wire payload.
package form

import "quizhub/internal/domain"

// OptionDraft is an in-progress, possibly-empty value for one multiple-choice
// option.
type OptionDraft struct {
	Value string
}

// QuestionDraft is one in-progress question. The identity survives removals
// of other questions, so operations address a draft unambiguously regardless
// of its current position.
type QuestionDraft struct {
	id      int
	Text    string
	Type    domain.QuestionType
	Options []OptionDraft
}

// ID returns the draft's stable identity.
func (q *QuestionDraft) ID() int {
	return q.id
}

// QuizDraft is the whole authoring state for one quiz. It is never
// persisted; it only exists while the creation screen is open.
type QuizDraft struct {
	Title     string
	questions []QuestionDraft
	nextID    int
}

// NewQuizDraft starts a draft with one boolean question holding a single
// empty option placeholder, mirroring the initial creation screen.
func NewQuizDraft() *QuizDraft {
	d := &QuizDraft{}
	d.AddQuestion()
	return d
}

// Questions returns the drafts in authoring order. The slice is a read
// view; mutations go through the draft operations.
func (d *QuizDraft) Questions() []QuestionDraft {
	return d.questions
}

// Len returns the number of question drafts.
func (d *QuizDraft) Len() int {
	return len(d.questions)
}

// AddQuestion appends a new boolean draft with one empty option placeholder
// and returns its identity. There is no upper bound on questions.
func (d *QuizDraft) AddQuestion() int {
	d.nextID++
	d.questions = append(d.questions, QuestionDraft{
		id:      d.nextID,
		Type:    domain.QuestionTypeBoolean,
		Options: []OptionDraft{{}},
	})
	return d.nextID
}

// RemoveQuestion removes the draft with the given identity. Removal is
// always a valid transition; the UI keeps the control disabled while only
// one question remains so a submitted quiz always has at least one.
func (d *QuizDraft) RemoveQuestion(id int) bool {
	for i := range d.questions {
		if d.questions[i].id == id {
			d.questions = append(d.questions[:i], d.questions[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuestionText updates one draft's prompt text.
func (d *QuizDraft) SetQuestionText(id int, text string) bool {
	q := d.question(id)
	if q == nil {
		return false
	}
	q.Text = text
	return true
}

// SetQuestionType changes one draft's answer type in place. Option drafts
// are kept as they are, so switching away from checkbox and back preserves
// anything the user already typed.
func (d *QuizDraft) SetQuestionType(id int, t domain.QuestionType) bool {
	q := d.question(id)
	if q == nil {
		return false
	}
	q.Type = t
	return true
}

// AddOption appends an empty option draft to one question.
func (d *QuizDraft) AddOption(id int) bool {
	q := d.question(id)
	if q == nil {
		return false
	}
	q.Options = append(q.Options, OptionDraft{})
	return true
}

// RemoveOption removes the option draft at the given position. No minimum
// is enforced here; the two-option floor applies at validation time only.
func (d *QuizDraft) RemoveOption(id int, index int) bool {
	q := d.question(id)
	if q == nil || index < 0 || index >= len(q.Options) {
		return false
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
	return true
}

// SetOption updates the value of one option draft.
func (d *QuizDraft) SetOption(id int, index int, value string) bool {
	q := d.question(id)
	if q == nil || index < 0 || index >= len(q.Options) {
		return false
	}
	q.Options[index].Value = value
	return true
}

func (d *QuizDraft) question(id int) *QuestionDraft {
	for i := range d.questions {
		if d.questions[i].id == id {
			return &d.questions[i]
		}
	}
	return nil
}
