package domain

import "context"

// QuizRepository is the persistence boundary for quizzes and their questions.
// A quiz owns its questions exclusively; deleting a quiz removes them with it.
type QuizRepository interface {
	// CreateQuiz persists the quiz and its full question set atomically and
	// fills in the store-assigned ids and timestamps.
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	// GetAllQuizzes returns every quiz with its questions in authoring order.
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)
	// GetQuizByID returns the quiz with its questions, or (nil, nil) when no
	// quiz exists for the id.
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	// DeleteQuiz removes the quiz; owned questions cascade. It reports
	// whether a row was actually deleted.
	DeleteQuiz(ctx context.Context, id int64) (bool, error)
}

// TransactionManager runs a function inside a store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
