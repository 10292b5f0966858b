package controllers

import (
	"encoding/json"
	"strings"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type checkAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// CheckAnswerController grades one answer, awards points and updates the
// session's running counters.
func (qc *QuizController) CheckAnswerController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	var req checkAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CheckAnswerController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question, err := qc.QuizRepo.GetQuestionByID(req.QuestionID)
	if err != nil {
		config.Logger.Error("Failed to fetch question", zap.Error(err), zap.String("question_id", req.QuestionID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch question",
		})
	}
	if question == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Question not found",
		})
	}

	answer := strings.ToUpper(strings.TrimSpace(req.Answer))
	var options map[string]string
	if err := json.Unmarshal(question.Options, &options); err != nil {
		config.Logger.Error("Failed to decode stored options", zap.Error(err), zap.String("question_id", req.QuestionID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read question",
		})
	}
	if _, ok := options[answer]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answer must be one of A, B, C or D",
		})
	}

	correct := answer == question.CorrectAnswer
	points := 0
	if correct {
		points = models.PointsPerCorrectAnswer
	}

	attempt := &models.QuizAttempt{
		SessionID:      sessionPayload.SessionID,
		QuestionID:     question.ID,
		Topic:          question.Topic,
		Difficulty:     question.Difficulty,
		SelectedAnswer: answer,
		CorrectAnswer:  question.CorrectAnswer,
		IsCorrect:      correct,
		PointsAwarded:  points,
	}

	if _, err := qc.QuizRepo.CreateAttempt(attempt); err != nil {
		config.Logger.Error("Failed to record attempt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attempt",
		})
	}

	state, err := qc.StateService.RecordAttempt(c.Context(), sessionPayload.SessionID, correct)
	if err != nil {
		// Counters are advisory; the durable attempt row is already written
		config.Logger.Warn("Failed to update session counters", zap.Error(err))
		state = nil
	}

	return c.JSON(fiber.Map{
		"correct":        correct,
		"correct_answer": question.CorrectAnswer,
		"explanation":    question.Explanation,
		"points_awarded": points,
		"quiz_state":     state,
	})
}
