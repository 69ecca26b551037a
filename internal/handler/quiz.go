package handler

import (
	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/logger"
	"quizhub/internal/service"
	"quizhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz together with its full question set
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz to create"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed request body")
	}

	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	created, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to create quiz",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Description Returns every quiz with its questions
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) GetAllQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.service.GetAllQuizzes(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get quizzes", zap.Error(err))
		return err
	}

	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get one quiz
// @Description Returns a single quiz with its questions
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateQuizID(c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.GetQuizByID(c.Context(), id)
	if err != nil {
		logger.Get().Warn("Failed to get quiz",
			zap.Error(err),
			zap.Int64("quiz_id", id),
		)
		return err
	}

	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz; its questions are removed with it
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.DeleteQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id, errs := h.validator.ValidateQuizID(c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	deleted, err := h.service.DeleteQuiz(c.Context(), id)
	if err != nil {
		logger.Get().Warn("Failed to delete quiz",
			zap.Error(err),
			zap.Int64("quiz_id", id),
		)
		return err
	}

	return c.JSON(deleted)
}
