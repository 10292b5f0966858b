package models

import (
	"time"

	"github.com/google/uuid"
)

// SyllabusDocument is a reference PDF uploaded to the Gemini Files API.
// GeminiFileURI is the file name returned by the API (files/...), used when
// prompting against cached syllabus material.
type SyllabusDocument struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	FileName      string    `gorm:"not null;unique" json:"file_name"`
	GeminiFileURI string    `gorm:"not null" json:"gemini_file_uri"`
	SizeBytes     int64     `json:"size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}
