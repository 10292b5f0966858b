package controllers

import (
	"encoding/json"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	internal_services "psle-tutor-backend/internal/services"
	questionbank_repositories "psle-tutor-backend/questionbank/repositories"
	"psle-tutor-backend/quiz/repositories"
	quiz_services "psle-tutor-backend/quiz/services"
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type QuizController struct {
	QuizRepo     repositories.QuizRepository
	Gemini       *internal_services.GeminiService
	StateService *quiz_services.QuizStateService
	IndexRepo    questionbank_repositories.QuestionIndexRepositoryInterface
}

type generateQuestionRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// GenerateQuestionController asks Gemini for a fresh MCQ and files it in the
// question bank. The correct answer and explanation stay server-side until
// the answer is checked.
func (qc *QuizController) GenerateQuestionController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	var req generateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for GenerateQuestionController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	topic, err := quiz_services.NormalizeTopic(req.Topic)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	difficulty, err := quiz_services.NormalizeDifficulty(req.Difficulty)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	prompt := quiz_services.BuildQuizPrompt(topic, difficulty)

	raw, err := qc.Gemini.GenerateContentWithRetry(c.Context(), prompt, nil)
	if err != nil {
		config.Logger.Error("Question generation failed",
			zap.String("topic", string(topic)),
			zap.String("difficulty", string(difficulty)),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate question",
		})
	}

	payload, err := quiz_services.ParseQuestionPayload(raw)
	if err != nil {
		snippet := raw
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		config.Logger.Error("Could not parse question response",
			zap.Error(err),
			zap.String("response", snippet))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Received a malformed question from the tutor model, please try again",
		})
	}

	optionsJSON, err := json.Marshal(payload.Options)
	if err != nil {
		config.Logger.Error("Failed to encode question options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store question",
		})
	}

	question := &models.QuizQuestion{
		SessionID:     sessionPayload.SessionID,
		Topic:         topic,
		Difficulty:    difficulty,
		Question:      payload.Question,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: payload.CorrectAnswer,
		Explanation:   payload.Explanation,
	}

	question, err = qc.QuizRepo.CreateQuestion(question)
	if err != nil {
		config.Logger.Error("Failed to persist generated question", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store question",
		})
	}

	// Index for the searchable bank; generation still succeeds if this fails
	if err := qc.IndexRepo.IndexQuestion(*question); err != nil {
		config.Logger.Warn("Failed to index generated question",
			zap.Error(err),
			zap.String("question_id", question.ID.String()))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         question.ID,
		"topic":      question.Topic,
		"difficulty": question.Difficulty,
		"question":   question.Question,
		"options":    payload.Options,
	})
}
