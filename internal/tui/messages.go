package tui

import "quizhub/internal/dto"

// quizzesLoadedMsg carries the result of a list fetch.
type quizzesLoadedMsg struct {
	Quizzes []dto.QuizResponse
}

// quizLoadedMsg carries one fetched quiz for the detail screen.
type quizLoadedMsg struct {
	Quiz *dto.QuizResponse
}

// quizNotFoundMsg reports that the requested quiz does not exist.
type quizNotFoundMsg struct {
	ID int64
}

// quizCreatedMsg reports a successful creation.
type quizCreatedMsg struct {
	Quiz *dto.QuizResponse
}

// quizDeletedMsg reports a successful deletion.
type quizDeletedMsg struct {
	ID int64
}

// errMsg carries a failed API call.
type errMsg struct {
	Err error
}
