package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"quizhub/internal/cache"
	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/logger"

	"go.uber.org/zap"
)

const quizCacheService = "quiz"

// QuizCacheService caches rendered quiz responses so list and detail reads
// skip the database on repeat views. Every method degrades gracefully: a
// broken cache is reported to the caller as a miss, never as a failure.
type QuizCacheService interface {
	GetQuizDetail(ctx context.Context, id int64) (*dto.QuizResponse, error)
	PutQuizDetail(ctx context.Context, id int64, resp *dto.QuizResponse) error
	GetQuizList(ctx context.Context) ([]dto.QuizResponse, error)
	PutQuizList(ctx context.Context, quizzes []dto.QuizResponse) error
	InvalidateQuiz(ctx context.Context, id int64) error
	InvalidateList(ctx context.Context) error
}

type quizCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizCacheService creates a QuizCacheService over the given cache.
func NewQuizCacheService(c domain.Cache, ttl time.Duration) QuizCacheService {
	return &quizCacheServiceImpl{cache: c, ttl: ttl}
}

func detailKey(id int64) string {
	return cache.GenerateCacheKey(quizCacheService, "detail", strconv.FormatInt(id, 10))
}

func listKey() string {
	return cache.GenerateCacheKey(quizCacheService, "list", "all")
}

// GetQuizDetail returns the cached detail response, or (nil, nil) on a miss.
func (s *quizCacheServiceImpl) GetQuizDetail(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := detailKey(id)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		logger.Get().Error("QuizCacheService: cache Get failed",
			zap.Error(err), zap.String("key", key))
		return nil, err
	}

	var resp dto.QuizResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		logger.Get().Warn("QuizCacheService: failed to unmarshal cached quiz detail",
			zap.Error(err), zap.Int64("quizID", id))
		return nil, nil
	}
	return &resp, nil
}

// PutQuizDetail stores the detail response under the quiz's cache key.
func (s *quizCacheServiceImpl) PutQuizDetail(ctx context.Context, id int64, resp *dto.QuizResponse) error {
	if s.cache == nil || resp == nil {
		return nil
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		logger.Get().Error("QuizCacheService: failed to marshal quiz detail for caching",
			zap.Error(err), zap.Int64("quizID", id))
		return err
	}
	return s.cache.Set(ctx, detailKey(id), string(raw), s.ttl)
}

// GetQuizList returns the cached list, or (nil, nil) on a miss.
func (s *quizCacheServiceImpl) GetQuizList(ctx context.Context) ([]dto.QuizResponse, error) {
	if s.cache == nil {
		return nil, nil
	}

	raw, err := s.cache.Get(ctx, listKey())
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		logger.Get().Error("QuizCacheService: cache Get failed",
			zap.Error(err), zap.String("key", listKey()))
		return nil, err
	}

	var quizzes []dto.QuizResponse
	if err := json.Unmarshal([]byte(raw), &quizzes); err != nil {
		logger.Get().Warn("QuizCacheService: failed to unmarshal cached quiz list", zap.Error(err))
		return nil, nil
	}
	return quizzes, nil
}

// PutQuizList stores the full list response.
func (s *quizCacheServiceImpl) PutQuizList(ctx context.Context, quizzes []dto.QuizResponse) error {
	if s.cache == nil || quizzes == nil {
		return nil
	}

	raw, err := json.Marshal(quizzes)
	if err != nil {
		logger.Get().Error("QuizCacheService: failed to marshal quiz list for caching", zap.Error(err))
		return err
	}
	return s.cache.Set(ctx, listKey(), string(raw), s.ttl)
}

// InvalidateQuiz drops the cached detail for one quiz.
func (s *quizCacheServiceImpl) InvalidateQuiz(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, detailKey(id))
}

// InvalidateList drops the cached list.
func (s *quizCacheServiceImpl) InvalidateList(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, listKey())
}
