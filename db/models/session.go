package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentSession represents one student's tutoring session. Live quiz
// counters are kept in Redis for the session's lifetime; the durable
// attempt history lives in quiz_attempts.
type StudentSession struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	DisplayName string     `gorm:"not null" json:"display_name"`
	ParentEmail *string    `json:"parent_email"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	EndedAt     *time.Time `json:"ended_at"`
}
