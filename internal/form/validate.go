package form

import (
	"fmt"
	"strings"

	"quizhub/internal/domain"
)

// Validation codes for authoring-time violations.
const (
	CodeMissingOrShortTitle  domain.ErrorCode = "MISSING_OR_SHORT_TITLE"
	CodeNoQuestions          domain.ErrorCode = "NO_QUESTIONS"
	CodeQuestionTextTooShort domain.ErrorCode = "QUESTION_TEXT_TOO_SHORT"
	CodeInvalidQuestionType  domain.ErrorCode = "INVALID_QUESTION_TYPE"
	CodeInsufficientOptions  domain.ErrorCode = "INSUFFICIENT_OPTIONS"
)

// fieldRule checks one field of the draft and reports its violations.
type fieldRule func(d *QuizDraft) domain.ValidationErrors

// The validator is a set of per-field rules plus a refinement pass for the
// cross-field checkbox rule, which only runs for questions whose own field
// rules passed. All violations are collected; nothing short-circuits.
var fieldRules = []fieldRule{
	validateTitle,
	validateQuestions,
}

// Validate checks the whole draft on a submit attempt. A non-empty result
// means no network call may be made.
func (d *QuizDraft) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors
	for _, rule := range fieldRules {
		errs = append(errs, rule(d)...)
	}
	errs = append(errs, refineCheckboxOptions(d, errs)...)
	return errs
}

func validateTitle(d *QuizDraft) domain.ValidationErrors {
	if len(strings.TrimSpace(d.Title)) < domain.MinTitleLength {
		return domain.ValidationErrors{
			domain.NewFieldError("title", CodeMissingOrShortTitle,
				fmt.Sprintf("Title must be at least %d chars", domain.MinTitleLength)),
		}
	}
	return nil
}

func validateQuestions(d *QuizDraft) domain.ValidationErrors {
	if len(d.questions) == 0 {
		return domain.ValidationErrors{
			domain.NewFieldError("questions", CodeNoQuestions, "Add at least one question"),
		}
	}

	var errs domain.ValidationErrors
	for i := range d.questions {
		q := &d.questions[i]
		if len(strings.TrimSpace(q.Text)) < domain.MinQuestionTextLength {
			errs = append(errs, domain.NewFieldError(
				questionField(i, "text"), CodeQuestionTextTooShort, "Question text required"))
		}
		if !q.Type.IsValid() {
			errs = append(errs, domain.NewFieldError(
				questionField(i, "type"), CodeInvalidQuestionType,
				fmt.Sprintf("Unknown question type: %s", q.Type)))
		}
	}
	return errs
}

// refineCheckboxOptions enforces the cross-field rule that a checkbox
// question must carry at least two non-empty options. The violation is
// scoped to the question's options field so callers can tell bad options
// apart from a bad question.
func refineCheckboxOptions(d *QuizDraft, fieldErrs domain.ValidationErrors) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for i := range d.questions {
		q := &d.questions[i]
		if q.Type != domain.QuestionTypeCheckbox {
			continue
		}
		if fieldErrs.HasField(questionField(i, "text")) || fieldErrs.HasField(questionField(i, "type")) {
			continue
		}
		if len(validOptionValues(q)) < domain.MinCheckboxOptions {
			errs = append(errs, domain.NewFieldError(
				questionField(i, "options"), CodeInsufficientOptions,
				fmt.Sprintf("Checkbox questions need at least %d options", domain.MinCheckboxOptions)))
		}
	}
	return errs
}

// validOptionValues trims every option draft and discards the empties.
func validOptionValues(q *QuestionDraft) []string {
	values := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if v := strings.TrimSpace(opt.Value); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func questionField(index int, field string) string {
	return fmt.Sprintf("questions[%d].%s", index, field)
}

// Notice is the user-facing summary shown when a submit attempt fails.
type Notice struct {
	Title       string
	Description string
}

// Classify reduces a violation set to the single notice shown to the user.
// Missing checkbox options win over a missing title, which wins over the
// generic fallback.
func Classify(errs domain.ValidationErrors) Notice {
	var titleMessage string
	optionsMissing := false
	for _, ve := range errs {
		if strings.HasSuffix(ve.Field, ".options") {
			optionsMissing = true
		}
		if ve.Field == "title" {
			titleMessage = ve.Message
		}
	}

	switch {
	case optionsMissing:
		return Notice{
			Title:       "Options Missing!",
			Description: "Multiple Choice questions need at least 2 options.",
		}
	case titleMessage != "":
		return Notice{
			Title:       "Missing Title",
			Description: titleMessage,
		}
	default:
		return Notice{
			Title:       "Form Error",
			Description: "Please check all required fields.",
		}
	}
}
