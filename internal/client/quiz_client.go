package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizhub/internal/dto"
)

// ErrNotFound reports that no quiz exists for the requested id. Views render
// it as a distinct state rather than treating it as a failure.
var ErrNotFound = errors.New("quiz not found")

// QuizClient is a typed HTTP client for the quiz API. The base URL is
// injected at construction; there is no package-level endpoint state.
type QuizClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a QuizClient.
type Option func(*QuizClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *QuizClient) {
		c.httpClient = hc
	}
}

// NewQuizClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8090/api").
func NewQuizClient(baseURL string, opts ...Option) *QuizClient {
	c := &QuizClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAll fetches every quiz with its questions.
func (c *QuizClient) GetAll(ctx context.Context) ([]dto.QuizResponse, error) {
	var quizzes []dto.QuizResponse
	if err := c.do(ctx, http.MethodGet, "/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetOne fetches a single quiz by id. It returns ErrNotFound when the
// server reports no quiz for the id.
func (c *QuizClient) GetOne(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	var quiz dto.QuizResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/quizzes/%d", id), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Create submits a quiz creation payload and returns the created quiz.
func (c *QuizClient) Create(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	var quiz dto.QuizResponse
	if err := c.do(ctx, http.MethodPost, "/quizzes", req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Delete removes a quiz by id and returns the deleted identity.
func (c *QuizClient) Delete(ctx context.Context, id int64) (*dto.DeleteQuizResponse, error) {
	var ack dto.DeleteQuizResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/quizzes/%d", id), nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// do performs one request. Error bodies are not parsed: any non-2xx status
// becomes an opaque error, except 404 which maps to ErrNotFound.
func (c *QuizClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s failed with status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
