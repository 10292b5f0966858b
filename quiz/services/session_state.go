package services

import (
	"context"
	"fmt"
	"time"

	"psle-tutor-backend/db/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// stateTTL keeps per-session quiz counters alive for a day of inactivity;
// durable history lives in quiz_attempts.
const stateTTL = 24 * time.Hour

// QuizState mirrors the per-session counters the tutor shows alongside each
// question: running score, attempts and correct answers.
type QuizState struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
	CorrectAnswers int `json:"correct_answers"`
}

type QuizStateService struct {
	redisClient *redis.Client
}

func NewQuizStateService(redisClient *redis.Client) *QuizStateService {
	return &QuizStateService{redisClient: redisClient}
}

func stateKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("quiz_state:%s", sessionID)
}

// RecordAttempt bumps the session counters for one answered question and
// returns the updated state.
func (s *QuizStateService) RecordAttempt(ctx context.Context, sessionID uuid.UUID, correct bool) (*QuizState, error) {
	key := stateKey(sessionID)

	pipe := s.redisClient.TxPipeline()
	pipe.HIncrBy(ctx, key, "total_questions", 1)
	if correct {
		pipe.HIncrBy(ctx, key, "correct_answers", 1)
		pipe.HIncrBy(ctx, key, "score", models.PointsPerCorrectAnswer)
	}
	pipe.Expire(ctx, key, stateTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	return s.GetState(ctx, sessionID)
}

// GetState reads the session counters; a session with no attempts yet gets
// the zero state.
func (s *QuizStateService) GetState(ctx context.Context, sessionID uuid.UUID) (*QuizState, error) {
	values, err := s.redisClient.HGetAll(ctx, stateKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz state: %w", err)
	}

	state := &QuizState{}
	fmt.Sscanf(values["score"], "%d", &state.Score)
	fmt.Sscanf(values["total_questions"], "%d", &state.TotalQuestions)
	fmt.Sscanf(values["correct_answers"], "%d", &state.CorrectAnswers)
	return state, nil
}

// ClearState drops the counters when a session ends.
func (s *QuizStateService) ClearState(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.redisClient.Del(ctx, stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear quiz state: %w", err)
	}
	return nil
}
