package repositories

import (
	"encoding/json"
	"testing"
	"time"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	bleveindex "psle-tutor-backend/questionbank/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func newTestQuestion(t *testing.T, topic models.Topic, text string) models.QuizQuestion {
	t.Helper()
	options, err := json.Marshal(map[string]string{
		"A": "Evaporation", "B": "Condensation", "C": "Melting", "D": "Freezing",
	})
	require.NoError(t, err)

	return models.QuizQuestion{
		ID:            uuid.New(),
		SessionID:     uuid.New(),
		Topic:         topic,
		Difficulty:    models.DifficultyMedium,
		Question:      text,
		Options:       datatypes.JSON(options),
		CorrectAnswer: "B",
		Explanation:   "hidden",
		CreatedAt:     time.Now(),
	}
}

func TestIndexAndSearchQuestions(t *testing.T) {
	config.Logger = zap.NewNop()

	indexer := bleveindex.NewIndexingService(zap.NewNop(), t.TempDir())
	_, repo := NewQuestionIndexRepository(indexer)

	cycles := newTestQuestion(t, models.TopicCycles, "Which process turns water vapour into droplets?")
	energy := newTestQuestion(t, models.TopicEnergy, "Which energy conversion happens in a torch?")

	require.NoError(t, repo.IndexQuestion(cycles))
	require.NoError(t, repo.IndexQuestion(energy))

	results, err := repo.SearchQuestions("water vapour", "", "", 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, results.Total, uint64(1))
	require.Equal(t, cycles.ID.String(), results.Hits[0].ID)

	// Topic filter narrows the match-all query
	results, err = repo.SearchQuestions("", "Energy", "", 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), results.Total)
	require.Equal(t, energy.ID.String(), results.Hits[0].ID)

	// Answers never appear in stored fields
	for _, hit := range results.Hits {
		require.NotContains(t, hit.Fields, "correct_answer")
		require.NotContains(t, hit.Fields, "explanation")
	}
}

func TestDeleteQuestionRemovesFromIndex(t *testing.T) {
	config.Logger = zap.NewNop()

	indexer := bleveindex.NewIndexingService(zap.NewNop(), t.TempDir())
	_, repo := NewQuestionIndexRepository(indexer)

	q := newTestQuestion(t, models.TopicSystems, "Which organ pumps blood around the body?")
	require.NoError(t, repo.IndexQuestion(q))
	require.NoError(t, repo.DeleteQuestion(q.ID.String()))

	results, err := repo.SearchQuestions("blood", "", "", 10)
	require.NoError(t, err)
	require.Equal(t, uint64(0), results.Total)
}
