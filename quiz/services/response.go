package services

import (
	"encoding/json"
	"fmt"
	"strings"

	internal_services "psle-tutor-backend/internal/services"
)

// QuestionPayload is the JSON envelope the model is instructed to return.
type QuestionPayload struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

var optionKeys = []string{"A", "B", "C", "D"}

// ParseQuestionPayload decodes and validates a generated question.
func ParseQuestionPayload(raw string) (*QuestionPayload, error) {
	cleaned := internal_services.StripCodeFences(raw)

	var payload QuestionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse question response: %w", err)
	}

	if strings.TrimSpace(payload.Question) == "" {
		return nil, fmt.Errorf("question text is empty")
	}
	if len(payload.Options) != len(optionKeys) {
		return nil, fmt.Errorf("expected %d options, got %d", len(optionKeys), len(payload.Options))
	}
	for _, key := range optionKeys {
		if strings.TrimSpace(payload.Options[key]) == "" {
			return nil, fmt.Errorf("option %s is missing or empty", key)
		}
	}

	payload.CorrectAnswer = strings.ToUpper(strings.TrimSpace(payload.CorrectAnswer))
	if _, ok := payload.Options[payload.CorrectAnswer]; !ok {
		return nil, fmt.Errorf("correct_answer %q is not one of the options", payload.CorrectAnswer)
	}

	return &payload, nil
}
