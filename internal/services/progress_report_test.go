package services

import (
	"testing"

	dashboard_services "psle-tutor-backend/dashboard/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildReportBody(t *testing.T) {
	summary := &dashboard_services.SummaryStats{
		TotalQuestions: 12,
		CorrectAnswers: 9,
		Accuracy:       decimal.NewFromInt(75),
		Score:          90,
		TopicsCovered:  3,
	}
	topics := []dashboard_services.TopicStat{
		{Topic: "Cycles", Attempted: 6, Correct: 5, Accuracy: decimal.RequireFromString("83.3")},
		{Topic: "Energy", Attempted: 6, Correct: 4, Accuracy: decimal.RequireFromString("66.7")},
	}

	body := buildReportBody("Jamie", summary, topics)

	assert.Contains(t, body, "Progress report for Jamie")
	assert.Contains(t, body, "Questions answered: 12")
	assert.Contains(t, body, "Accuracy: 75%")
	assert.Contains(t, body, "Total score: 90 points")
	assert.Contains(t, body, "<td>Cycles</td>")
	assert.Contains(t, body, "83.3%")
}

func TestBuildReportBodyWithoutTopics(t *testing.T) {
	summary := &dashboard_services.SummaryStats{
		TotalQuestions: 1,
		CorrectAnswers: 0,
		Accuracy:       decimal.Zero,
	}

	body := buildReportBody("Sam", summary, nil)

	assert.NotContains(t, body, "<table")
	assert.Contains(t, body, "Correct answers: 0")
}
