package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailLog records every progress-report or alert email sent.
type EmailLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Recipient string    `gorm:"not null" json:"recipient"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	SentAt    time.Time `json:"sent_at"`
}
