package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/domain"
	"quizhub/internal/repository/models"
)

// QuizDatabaseAdapter implements domain.QuizRepository over a DBTX.
// Passing a transaction-aware executor lets the same adapter run inside
// a TransactionManager transaction or against the bare connection.
type QuizDatabaseAdapter struct {
	db DBTX
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db DBTX) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz implements domain.QuizRepository. Ids come from the quizzes_seq
// and questions_seq sequences; question positions preserve authoring order.
// Callers wanting atomicity run this inside TransactionManager.WithTransaction.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	exec := GetExecutor(ctx, a.db)

	quizID, err := nextVal(ctx, exec, "quizzes_seq")
	if err != nil {
		return fmt.Errorf("failed to allocate quiz id: %w", err)
	}

	now := time.Now()
	insertQuiz := `INSERT INTO quizzes (
		id, title, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4
	)`
	if _, err := exec.ExecContext(ctx, insertQuiz, quizID, quiz.Title, now, now); err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	insertQuestion := `INSERT INTO questions (
		id, quiz_id, text, qtype, options, position, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		questionID, err := nextVal(ctx, exec, "questions_seq")
		if err != nil {
			return fmt.Errorf("failed to allocate question id: %w", err)
		}

		var options sql.NullString
		if q.Type == domain.QuestionTypeCheckbox && q.Options != "" {
			options = sql.NullString{String: q.Options, Valid: true}
		}

		_, err = exec.ExecContext(ctx, insertQuestion,
			questionID,
			quizID,
			q.Text,
			string(q.Type),
			options,
			i+1,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to save question at position %d: %w", i+1, err)
		}

		q.ID = questionID
		q.QuizID = quizID
		q.Position = i + 1
	}

	quiz.ID = quizID
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	return nil
}

// GetAllQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuizzes []models.Quiz
	quizQuery := `SELECT
		id "id",
		title "title",
		created_at "created_at",
		updated_at "updated_at"
	FROM quizzes
	ORDER BY id ASC`
	if err := exec.SelectContext(ctx, &modelQuizzes, quizQuery); err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	if len(modelQuizzes) == 0 {
		return []*domain.Quiz{}, nil
	}

	var modelQuestions []models.Question
	questionQuery := `SELECT
		id "id",
		quiz_id "quiz_id",
		text "text",
		qtype "qtype",
		options "options",
		position "position",
		created_at "created_at"
	FROM questions
	ORDER BY quiz_id ASC, position ASC`
	if err := exec.SelectContext(ctx, &modelQuestions, questionQuery); err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	byQuiz := make(map[int64][]domain.Question, len(modelQuizzes))
	for i := range modelQuestions {
		q := toDomainQuestion(&modelQuestions[i])
		byQuiz[q.QuizID] = append(byQuiz[q.QuizID], q)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quiz := toDomainQuiz(&modelQuizzes[i])
		quiz.Questions = byQuiz[quiz.ID]
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuiz models.Quiz
	quizQuery := `SELECT
		id "id",
		title "title",
		created_at "created_at",
		updated_at "updated_at"
	FROM quizzes
	WHERE id = :1`
	err := exec.GetContext(ctx, &modelQuiz, quizQuery, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %d: %w", id, err)
	}

	var modelQuestions []models.Question
	questionQuery := `SELECT
		id "id",
		quiz_id "quiz_id",
		text "text",
		qtype "qtype",
		options "options",
		position "position",
		created_at "created_at"
	FROM questions
	WHERE quiz_id = :1
	ORDER BY position ASC`
	if err := exec.SelectContext(ctx, &modelQuestions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %d: %w", id, err)
	}

	quiz := toDomainQuiz(&modelQuiz)
	quiz.Questions = make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		quiz.Questions = append(quiz.Questions, toDomainQuestion(&modelQuestions[i]))
	}
	return quiz, nil
}

// DeleteQuiz implements domain.QuizRepository. Owned questions are removed
// by the ON DELETE CASCADE constraint on questions.quiz_id.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id int64) (bool, error) {
	exec := GetExecutor(ctx, a.db)

	result, err := exec.ExecContext(ctx, `DELETE FROM quizzes WHERE id = :1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func nextVal(ctx context.Context, exec DBTX, sequence string) (int64, error) {
	var id int64
	query := fmt.Sprintf(`SELECT %s.NEXTVAL "id" FROM dual`, sequence)
	if err := exec.GetContext(ctx, &id, query); err != nil {
		return 0, err
	}
	return id, nil
}

// Helper functions for model conversion
func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:        m.ID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) domain.Question {
	q := domain.Question{
		ID:       m.ID,
		QuizID:   m.QuizID,
		Text:     m.Text,
		Type:     domain.QuestionType(m.Type),
		Position: m.Position,
	}
	if m.Options.Valid {
		q.Options = m.Options.String
	}
	return q
}
