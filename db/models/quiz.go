package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Topic string

const (
	TopicCycles       Topic = "Cycles"
	TopicSystems      Topic = "Systems"
	TopicInteractions Topic = "Interactions"
	TopicEnergy       Topic = "Energy"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// PointsPerCorrectAnswer is awarded for each correctly answered question.
const PointsPerCorrectAnswer = 10

// QuizQuestion is a generated multiple-choice question kept in the question
// bank. Options holds the four choices keyed "A".."D" as JSON.
type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	SessionID     uuid.UUID      `gorm:"type:uuid;index" json:"session_id"`
	Topic         Topic          `gorm:"type:varchar(20);not null;index" json:"topic"`
	Difficulty    Difficulty     `gorm:"type:varchar(10);not null" json:"difficulty"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `gorm:"not null" json:"options"`
	CorrectAnswer string         `gorm:"type:varchar(1);not null" json:"-"` // Never leaked before the answer is checked
	Explanation   string         `gorm:"type:text" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
}

// QuizAttempt records one answered question.
type QuizAttempt struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	SessionID      uuid.UUID  `gorm:"type:uuid;index" json:"session_id"`
	QuestionID     uuid.UUID  `gorm:"type:uuid;index" json:"question_id"`
	Topic          Topic      `gorm:"type:varchar(20);not null;index" json:"topic"`
	Difficulty     Difficulty `gorm:"type:varchar(10);not null" json:"difficulty"`
	SelectedAnswer string     `gorm:"type:varchar(1);not null" json:"selected_answer"`
	CorrectAnswer  string     `gorm:"type:varchar(1);not null" json:"correct_answer"`
	IsCorrect      bool       `gorm:"not null" json:"is_correct"`
	PointsAwarded  int        `gorm:"not null" json:"points_awarded"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AllTopics lists the PSLE Science themes offered by the tutor.
func AllTopics() []Topic {
	return []Topic{TopicCycles, TopicSystems, TopicInteractions, TopicEnergy}
}

// AllDifficulties lists the supported difficulty levels.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
