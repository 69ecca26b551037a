package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGetAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/quizzes", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]dto.QuizResponse{
			{ID: 1, Title: "JavaScript Fundamentals"},
			{ID: 2, Title: "React.js Basics"},
		})
	}))
	defer server.Close()

	c := NewQuizClient(server.URL + "/api")
	quizzes, err := c.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "React.js Basics", quizzes[1].Title)
}

func TestGetOne(t *testing.T) {
	t.Run("existing quiz", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/quizzes/1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(dto.QuizResponse{
				ID:    1,
				Title: "JavaScript Fundamentals",
				Questions: []dto.QuestionResponse{
					{ID: 10, QuizID: 1, Text: "Select built-in React Hooks:", Type: "checkbox", Options: strPtr("useState,useEffect")},
				},
			})
		}))
		defer server.Close()

		c := NewQuizClient(server.URL + "/api")
		quiz, err := c.GetOne(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, quiz)
		require.Len(t, quiz.Questions, 1)
		require.NotNil(t, quiz.Questions[0].Options)
		assert.Equal(t, "useState,useEffect", *quiz.Questions[0].Options)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c := NewQuizClient(server.URL + "/api")
		quiz, err := c.GetOne(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, quiz)
	})

	t.Run("other failures stay opaque", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewQuizClient(server.URL + "/api")
		_, err := c.GetOne(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req dto.CreateQuizRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "React.js Basics", req.Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.QuizResponse{ID: 2, Title: req.Title})
	}))
	defer server.Close()

	c := NewQuizClient(server.URL + "/api")
	quiz, err := c.Create(context.Background(), &dto.CreateQuizRequest{
		Title: "React.js Basics",
		Questions: []dto.CreateQuestionRequest{
			{Text: "React uses a Virtual DOM.", Type: "boolean"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), quiz.ID)
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/quizzes/1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(dto.DeleteQuizResponse{ID: 1})
	}))
	defer server.Close()

	c := NewQuizClient(server.URL + "/api")
	ack, err := c.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.ID)
}

func TestBaseURLTrimming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]dto.QuizResponse{})
	}))
	defer server.Close()

	c := NewQuizClient(server.URL + "/api/")
	_, err := c.GetAll(context.Background())
	assert.NoError(t, err)
}
