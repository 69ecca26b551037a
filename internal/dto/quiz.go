package dto

import "time"

// CreateQuestionRequest is one question in a quiz creation payload.
// Options carries the comma-joined choice values for checkbox questions
// and is omitted entirely for other types.
// @Description Question in a quiz creation request
type CreateQuestionRequest struct {
	Text    string  `json:"text"`
	Type    string  `json:"type"`
	Options *string `json:"options,omitempty"`
}

// CreateQuizRequest is the payload for creating a quiz with its questions.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title     string                  `json:"title"`
	Questions []CreateQuestionRequest `json:"questions"`
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	ID      int64   `json:"id"`
	QuizID  int64   `json:"quiz_id"`
	Text    string  `json:"text"`
	Type    string  `json:"type"`
	Options *string `json:"options,omitempty"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz with its questions
type QuizResponse struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
}

// QuizListResponse represents the quiz collection in the API response
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// DeleteQuizResponse acknowledges a deletion with the removed quiz identity
type DeleteQuizResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
