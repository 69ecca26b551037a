package service

import (
	"context"
	"strconv"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetAllQuizzes(ctx context.Context) ([]dto.QuizResponse, error)
	GetQuizByID(ctx context.Context, id int64) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	txManager domain.TransactionManager
	quizCache QuizCacheService
	group     singleflight.Group
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	quizCache QuizCacheService,
) QuizService {
	return &quizService{
		repo:      repo,
		txManager: txManager,
		quizCache: quizCache,
	}
}

// CreateQuiz implements QuizService. The quiz and its questions are inserted
// in a single transaction; a partial quiz is never visible.
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz := toDomainQuiz(req)
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	create := func(ctx context.Context) error {
		return s.repo.CreateQuiz(ctx, quiz)
	}

	var err error
	if s.txManager != nil {
		err = s.txManager.WithTransaction(ctx, create)
	} else {
		err = create(ctx)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to create quiz", err)
	}

	if s.quizCache != nil {
		if err := s.quizCache.InvalidateList(ctx); err != nil {
			logger.Get().Warn("Failed to invalidate quiz list cache after create",
				zap.Error(err), zap.Int64("quizID", quiz.ID))
		}
	}

	resp := toQuizResponse(quiz)
	return &resp, nil
}

// GetAllQuizzes implements QuizService
func (s *quizService) GetAllQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	if s.quizCache != nil {
		cached, err := s.quizCache.GetQuizList(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	quizzes, err := s.repo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quizzes", err)
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, toQuizResponse(quiz))
	}

	if s.quizCache != nil {
		if err := s.quizCache.PutQuizList(ctx, responses); err != nil {
			logger.Get().Warn("Failed to cache quiz list", zap.Error(err))
		}
	}
	return responses, nil
}

// GetQuizByID implements QuizService. Concurrent misses for the same quiz
// collapse into one database read through singleflight.
func (s *quizService) GetQuizByID(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	if s.quizCache != nil {
		cached, err := s.quizCache.GetQuizDetail(ctx, id)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	result, err, _ := s.group.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		quiz, err := s.repo.GetQuizByID(ctx, id)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get quiz", err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(id)
		}

		resp := toQuizResponse(quiz)
		if s.quizCache != nil {
			if err := s.quizCache.PutQuizDetail(ctx, id, &resp); err != nil {
				logger.Get().Warn("Failed to cache quiz detail",
					zap.Error(err), zap.Int64("quizID", id))
			}
		}
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.QuizResponse), nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error) {
	deleted, err := s.repo.DeleteQuiz(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to delete quiz", err)
	}
	if !deleted {
		return nil, domain.NewQuizNotFoundError(id)
	}

	if s.quizCache != nil {
		if err := s.quizCache.InvalidateQuiz(ctx, id); err != nil {
			logger.Get().Warn("Failed to invalidate quiz detail cache after delete",
				zap.Error(err), zap.Int64("quizID", id))
		}
		if err := s.quizCache.InvalidateList(ctx); err != nil {
			logger.Get().Warn("Failed to invalidate quiz list cache after delete",
				zap.Error(err), zap.Int64("quizID", id))
		}
	}

	return &dto.DeleteQuizResponse{ID: id}, nil
}

// Helper functions for dto conversion

func toDomainQuiz(req *dto.CreateQuizRequest) *domain.Quiz {
	questions := make([]domain.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		question := domain.Question{
			Text: q.Text,
			Type: domain.QuestionType(q.Type),
		}
		if q.Options != nil {
			question.Options = *q.Options
		}
		questions = append(questions, question)
	}
	return domain.NewQuiz(req.Title, questions)
}

func toQuizResponse(quiz *domain.Quiz) dto.QuizResponse {
	questions := make([]dto.QuestionResponse, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		qr := dto.QuestionResponse{
			ID:     q.ID,
			QuizID: q.QuizID,
			Text:   q.Text,
			Type:   string(q.Type),
		}
		if q.Type == domain.QuestionTypeCheckbox && q.Options != "" {
			options := q.Options
			qr.Options = &options
		}
		questions = append(questions, qr)
	}
	return dto.QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
	}
}
