package controllers

import (
	"psle-tutor-backend/questionbank/repositories"

	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	repo *repositories.QuestionIndexRepository
}

func NewSearchController(repo *repositories.QuestionIndexRepository) *SearchController {
	return &SearchController{repo: repo}
}

func (c *SearchController) SearchQuestionsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	topic := ctx.Query("topic")
	difficulty := ctx.Query("difficulty")
	size := ctx.QueryInt("size", 20)

	results, err := c.repo.SearchQuestions(query, topic, difficulty, size)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	var matches []interface{}
	for _, hit := range results.Hits {
		matches = append(matches, hit.Fields)
	}

	return ctx.JSON(fiber.Map{
		"results": matches,
		"total":   results.Total,
	})
}
