package form

import (
	"strings"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
)

// Serialize produces the exact creation payload for a validated draft.
// Checkbox option drafts collapse into one comma-joined string of their
// trimmed non-empty values, order preserved; every other type omits the
// options field entirely. Call only after Validate returns no violations.
func (d *QuizDraft) Serialize() *dto.CreateQuizRequest {
	questions := make([]dto.CreateQuestionRequest, 0, len(d.questions))
	for i := range d.questions {
		q := &d.questions[i]
		req := dto.CreateQuestionRequest{
			Text: strings.TrimSpace(q.Text),
			Type: string(q.Type),
		}
		if q.Type == domain.QuestionTypeCheckbox {
			joined := strings.Join(validOptionValues(q), domain.OptionsSeparator)
			req.Options = &joined
		}
		questions = append(questions, req)
	}
	return &dto.CreateQuizRequest{
		Title:     strings.TrimSpace(d.Title),
		Questions: questions,
	}
}
