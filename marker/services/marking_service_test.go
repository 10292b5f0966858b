package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeedbackJSON = `{
	"transcription": "The water dried up because of the sun.",
	"score": "0/2",
	"verdict": "Strict",
	"missing_keywords": ["gained heat", "evaporated"],
	"feedback_text": "You lost marks because you said 'dried up' instead of 'evaporated'.",
	"model_answer": "The water gained heat from the sun and evaporated."
}`

func TestParseFeedbackPayload(t *testing.T) {
	payload, err := ParseFeedbackPayload(validFeedbackJSON)
	require.NoError(t, err)
	assert.Equal(t, "0/2", payload.Score)
	assert.Equal(t, "Strict", payload.Verdict)
	assert.Equal(t, []string{"gained heat", "evaporated"}, payload.MissingKeywords)
}

func TestParseFeedbackPayloadFenced(t *testing.T) {
	payload, err := ParseFeedbackPayload("```json\n" + validFeedbackJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Strict", payload.Verdict)
}

func TestParseFeedbackPayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose instead of json", "I am sorry, I cannot assess this image."},
		{"empty feedback", `{"transcription": "x", "score": "1/2", "verdict": "Strict"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeedbackPayload(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name        string
		score       string
		wantAwarded int
		wantTotal   int
	}{
		{"full marks", "2/2", 2, 2},
		{"partial", "1/2", 1, 2},
		{"three mark question", "3/3", 3, 3},
		{"whitespace", " 1 / 2 ", 1, 2},
		{"malformed", "two out of two", 0, 2},
		{"missing total", "2/", 0, 2},
		{"negative", "-1/2", 0, 2},
		{"awarded above total", "5/2", 0, 2},
		{"zero total", "0/0", 0, 2},
		{"empty", "", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			awarded, total := ParseScore(tt.score)
			assert.Equal(t, tt.wantAwarded, awarded)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestSupportedWorksheetType(t *testing.T) {
	tests := []struct {
		mime      string
		supported bool
		isPDF     bool
	}{
		{"image/png", true, false},
		{"image/jpeg", true, false},
		{"image/jpg", true, false},
		{"application/pdf", false, true},
		{"text/plain", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			supported, isPDF := SupportedWorksheetType(tt.mime)
			assert.Equal(t, tt.supported, supported)
			assert.Equal(t, tt.isPDF, isPDF)
		})
	}
}
