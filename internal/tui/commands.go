package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/client"
	"quizhub/internal/dto"
)

const requestTimeout = 10 * time.Second

// fetchQuizzes loads the full quiz list.
func fetchQuizzes(c *client.QuizClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		quizzes, err := c.GetAll(ctx)
		if err != nil {
			return errMsg{Err: err}
		}
		return quizzesLoadedMsg{Quizzes: quizzes}
	}
}

// fetchQuiz loads one quiz by id. A missing quiz is a distinct message, not
// an error.
func fetchQuiz(c *client.QuizClient, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		quiz, err := c.GetOne(ctx, id)
		if errors.Is(err, client.ErrNotFound) {
			return quizNotFoundMsg{ID: id}
		}
		if err != nil {
			return errMsg{Err: err}
		}
		return quizLoadedMsg{Quiz: quiz}
	}
}

// createQuiz submits a creation payload.
func createQuiz(c *client.QuizClient, req *dto.CreateQuizRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		quiz, err := c.Create(ctx, req)
		if err != nil {
			return errMsg{Err: err}
		}
		return quizCreatedMsg{Quiz: quiz}
	}
}

// deleteQuiz removes one quiz by id.
func deleteQuiz(c *client.QuizClient, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := c.Delete(ctx, id); err != nil {
			return errMsg{Err: err}
		}
		return quizDeletedMsg{ID: id}
	}
}
