package services

import (
	"github.com/shopspring/decimal"
)

// AccuracyPercent returns correct/total as a percentage rounded to one
// decimal place. Zero attempts means zero accuracy, not a division error.
func AccuracyPercent(correct, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(correct).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// TopicStat is one row of the per-topic breakdown.
type TopicStat struct {
	Topic     string          `json:"topic"`
	Attempted int64           `json:"attempted"`
	Correct   int64           `json:"correct"`
	Accuracy  decimal.Decimal `json:"accuracy"`
}

// SummaryStats aggregates a whole session's quiz activity.
type SummaryStats struct {
	TotalQuestions int64           `json:"total_questions"`
	CorrectAnswers int64           `json:"correct_answers"`
	Accuracy       decimal.Decimal `json:"accuracy"`
	Score          int64           `json:"score"`
	TopicsCovered  int64           `json:"topics_covered"`
}
