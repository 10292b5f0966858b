package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestionJSON = `{
	"question": "Which process turns water vapour into water droplets?",
	"options": {
		"A": "Evaporation",
		"B": "Condensation",
		"C": "Melting",
		"D": "Freezing"
	},
	"correct_answer": "B",
	"explanation": "Water vapour loses heat and condenses into water droplets."
}`

func TestParseQuestionPayload(t *testing.T) {
	payload, err := ParseQuestionPayload(validQuestionJSON)
	require.NoError(t, err)
	assert.Equal(t, "B", payload.CorrectAnswer)
	assert.Len(t, payload.Options, 4)
	assert.Contains(t, payload.Question, "water vapour")
}

func TestParseQuestionPayloadFenced(t *testing.T) {
	payload, err := ParseQuestionPayload("```json\n" + validQuestionJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "B", payload.CorrectAnswer)
}

func TestParseQuestionPayloadLowercasesAnswer(t *testing.T) {
	raw := `{
		"question": "Q?",
		"options": {"A": "1", "B": "2", "C": "3", "D": "4"},
		"correct_answer": " b ",
		"explanation": "e"
	}`
	payload, err := ParseQuestionPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, "B", payload.CorrectAnswer)
}

func TestParseQuestionPayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the model apologises for the inconvenience"},
		{"empty question", `{"question": " ", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "A"}`},
		{"missing option", `{"question": "Q?", "options": {"A": "1", "B": "2", "C": "3"}, "correct_answer": "A"}`},
		{"answer not an option", `{"question": "Q?", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "E"}`},
		{"blank option text", `{"question": "Q?", "options": {"A": "1", "B": " ", "C": "3", "D": "4"}, "correct_answer": "A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestionPayload(tt.raw)
			assert.Error(t, err)
		})
	}
}
