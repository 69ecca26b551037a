package validation

import (
	"fmt"
	"strings"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates a quiz creation payload. It mirrors
// the authoring-time rules so a hand-built request cannot bypass them.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if len(strings.TrimSpace(req.Title)) < domain.MinTitleLength {
		errs = append(errs, domain.NewFieldError("title", domain.CodeOutOfRange,
			fmt.Sprintf("title must be at least %d characters", domain.MinTitleLength)))
	}

	if len(req.Questions) == 0 {
		errs = append(errs, domain.NewMissingFieldError("questions"))
		return errs
	}

	for i, q := range req.Questions {
		field := fmt.Sprintf("questions[%d]", i)

		if len(strings.TrimSpace(q.Text)) < domain.MinQuestionTextLength {
			errs = append(errs, domain.NewFieldError(field+".text", domain.CodeOutOfRange,
				fmt.Sprintf("question text must be at least %d characters", domain.MinQuestionTextLength)))
		}

		qType := domain.QuestionType(q.Type)
		if !qType.IsValid() {
			errs = append(errs, domain.NewInvalidFormatError(field+".type", q.Type))
			continue
		}

		if qType == domain.QuestionTypeCheckbox {
			if q.Options == nil || len(domain.OptionValues(*q.Options)) < domain.MinCheckboxOptions {
				errs = append(errs, domain.NewFieldError(field+".options", domain.CodeOutOfRange,
					fmt.Sprintf("checkbox questions need at least %d options", domain.MinCheckboxOptions)))
			}
		} else if q.Options != nil {
			errs = append(errs, domain.NewInvalidFormatError(field+".options",
				"options are only allowed on checkbox questions"))
		}
	}

	return errs
}

// ValidateQuizID validates a path id parameter before it reaches the store.
func (v *Validator) ValidateQuizID(raw string) (int64, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}

	var id int64
	for _, char := range raw {
		if char < '0' || char > '9' {
			return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
		}
		id = id*10 + int64(char-'0')
		if id > 1<<53 {
			return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
		}
	}
	if id == 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}
