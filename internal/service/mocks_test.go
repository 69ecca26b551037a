package service

import (
	"context"
	"time"

	"quizhub/internal/domain"
	"quizhub/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockTransactionManager ---
// WithTransaction runs the callback directly; transactional wiring itself is
// covered by the repository tests.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- MockQuizCacheService ---
type MockQuizCacheService struct {
	mock.Mock
}

func (m *MockQuizCacheService) GetQuizDetail(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}

func (m *MockQuizCacheService) PutQuizDetail(ctx context.Context, id int64, resp *dto.QuizResponse) error {
	args := m.Called(ctx, id, resp)
	return args.Error(0)
}

func (m *MockQuizCacheService) GetQuizList(ctx context.Context) ([]dto.QuizResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuizResponse), args.Error(1)
}

func (m *MockQuizCacheService) PutQuizList(ctx context.Context, quizzes []dto.QuizResponse) error {
	args := m.Called(ctx, quizzes)
	return args.Error(0)
}

func (m *MockQuizCacheService) InvalidateQuiz(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizCacheService) InvalidateList(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.QuizRepository = (*MockQuizRepository)(nil)
var _ domain.TransactionManager = (*MockTransactionManager)(nil)
var _ QuizCacheService = (*MockQuizCacheService)(nil)
var _ domain.Cache = (*MockCache)(nil)
