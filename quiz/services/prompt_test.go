package services

import (
	"testing"

	"psle-tutor-backend/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTopic(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Topic
		wantErr bool
	}{
		{"Cycles", models.TopicCycles, false},
		{"cycles", models.TopicCycles, false},
		{"  ENERGY  ", models.TopicEnergy, false},
		{"interactions", models.TopicInteractions, false},
		{"systems", models.TopicSystems, false},
		{"Chemistry", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeTopic(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	got, err := NormalizeDifficulty("medium")
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyMedium, got)

	_, err = NormalizeDifficulty("impossible")
	assert.Error(t, err)
}

func TestBuildQuizPromptMentionsTopicAndDifficulty(t *testing.T) {
	prompt := BuildQuizPrompt(models.TopicEnergy, models.DifficultyHard)
	assert.Contains(t, prompt, "Topic: Energy")
	assert.Contains(t, prompt, "Difficulty Level: Hard")
	assert.Contains(t, prompt, "JSON format only")
	assert.Contains(t, prompt, "exactly 4 options (A, B, C, D)")
}
