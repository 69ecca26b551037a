package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/handler"
	"quizhub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	CreateQuizFunc    func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetAllQuizzesFunc func(ctx context.Context) ([]dto.QuizResponse, error)
	GetQuizByIDFunc   func(ctx context.Context, id int64) (*dto.QuizResponse, error)
	DeleteQuizFunc    func(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error)
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, req)
	}
	panic("MockQuizService.CreateQuizFunc not implemented")
}

func (m *MockQuizService) GetAllQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	if m.GetAllQuizzesFunc != nil {
		return m.GetAllQuizzesFunc(ctx)
	}
	panic("MockQuizService.GetAllQuizzesFunc not implemented")
}

func (m *MockQuizService) GetQuizByID(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	if m.GetQuizByIDFunc != nil {
		return m.GetQuizByIDFunc(ctx, id)
	}
	panic("MockQuizService.GetQuizByIDFunc not implemented")
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error) {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id)
	}
	panic("MockQuizService.DeleteQuizFunc not implemented")
}

func setupApp(mockSvc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	quizHandler := handler.NewQuizHandler(mockSvc)

	api := app.Group("/api")
	api.Post("/quizzes", quizHandler.CreateQuiz)
	api.Get("/quizzes", quizHandler.GetAllQuizzes)
	api.Get("/quizzes/:id", quizHandler.GetQuiz)
	api.Delete("/quizzes/:id", quizHandler.DeleteQuiz)
	return app
}

func strPtr(s string) *string { return &s }

func validCreateRequest() dto.CreateQuizRequest {
	return dto.CreateQuizRequest{
		Title: "JavaScript Fundamentals",
		Questions: []dto.CreateQuestionRequest{
			{Text: "Is JavaScript a single-threaded language?", Type: "boolean"},
			{Text: "Which of the following are valid JS data types?", Type: "checkbox", Options: strPtr("String,Boolean")},
		},
	}
}

func TestCreateQuizHandler(t *testing.T) {
	t.Run("valid payload returns 201 with the created quiz", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				assert.Equal(t, "JavaScript Fundamentals", req.Title)
				return &dto.QuizResponse{ID: 1, Title: req.Title}, nil
			},
		}
		app := setupApp(mockSvc)

		body, _ := json.Marshal(validCreateRequest())
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var created dto.QuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				t.Fatal("service should not be called for a malformed body")
				return nil, nil
			},
		}
		app := setupApp(mockSvc)

		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation failure returns 400 with field errors", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				t.Fatal("service should not be called for an invalid payload")
				return nil, nil
			},
		}
		app := setupApp(mockSvc)

		payload := validCreateRequest()
		payload.Title = "JS"
		payload.Questions[1].Options = strPtr("Only one,")
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var errResp middleware.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, string(domain.CodeValidation), errResp.Code)
		require.Len(t, errResp.Errors, 2)
		assert.Equal(t, "title", errResp.Errors[0].Field)
		assert.Equal(t, "questions[1].options", errResp.Errors[1].Field)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				return nil, domain.NewInternalError("Failed to create quiz", assert.AnError)
			},
		}
		app := setupApp(mockSvc)

		body, _ := json.Marshal(validCreateRequest())
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetAllQuizzesHandler(t *testing.T) {
	mockSvc := &MockQuizService{
		GetAllQuizzesFunc: func(ctx context.Context) ([]dto.QuizResponse, error) {
			return []dto.QuizResponse{
				{ID: 1, Title: "JavaScript Fundamentals"},
				{ID: 2, Title: "React.js Basics"},
			}, nil
		},
	}
	app := setupApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var quizzes []dto.QuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quizzes))
	require.Len(t, quizzes, 2)
	assert.Equal(t, "React.js Basics", quizzes[1].Title)
}

func TestGetQuizHandler(t *testing.T) {
	t.Run("existing quiz returns 200", func(t *testing.T) {
		mockSvc := &MockQuizService{
			GetQuizByIDFunc: func(ctx context.Context, id int64) (*dto.QuizResponse, error) {
				assert.Equal(t, int64(1), id)
				return &dto.QuizResponse{ID: 1, Title: "JavaScript Fundamentals"}, nil
			},
		}
		app := setupApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing quiz returns 404 with details", func(t *testing.T) {
		mockSvc := &MockQuizService{
			GetQuizByIDFunc: func(ctx context.Context, id int64) (*dto.QuizResponse, error) {
				return nil, domain.NewQuizNotFoundError(id)
			},
		}
		app := setupApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var errResp middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, string(domain.CodeQuizNotFound), errResp.Code)
		assert.EqualValues(t, 99, errResp.Details["quiz_id"])
	})

	t.Run("non-numeric id returns 400 without touching the service", func(t *testing.T) {
		mockSvc := &MockQuizService{
			GetQuizByIDFunc: func(ctx context.Context, id int64) (*dto.QuizResponse, error) {
				t.Fatal("service should not be called for an invalid id")
				return nil, nil
			},
		}
		app := setupApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteQuizHandler(t *testing.T) {
	t.Run("existing quiz returns the deleted identity", func(t *testing.T) {
		mockSvc := &MockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error) {
				return &dto.DeleteQuizResponse{ID: id}, nil
			},
		}
		app := setupApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/quizzes/1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var ack dto.DeleteQuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
		assert.Equal(t, int64(1), ack.ID)
	})

	t.Run("missing quiz returns 404", func(t *testing.T) {
		mockSvc := &MockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error) {
				return nil, domain.NewQuizNotFoundError(id)
			},
		}
		app := setupApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/quizzes/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
