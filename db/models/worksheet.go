package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionMarking SubmissionStatus = "marking"
	SubmissionMarked  SubmissionStatus = "marked"
	SubmissionFailed  SubmissionStatus = "failed"
)

type MarkingVerdict string

const (
	VerdictCorrect MarkingVerdict = "Correct"
	VerdictStrict  MarkingVerdict = "Strict"
	VerdictLenient MarkingVerdict = "Lenient"
)

// WorksheetSubmission is an uploaded worksheet image and the marker's
// feedback once the background marking task has run. RawResponse keeps the
// unparsed model output when feedback JSON cannot be decoded.
type WorksheetSubmission struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;" json:"id"`
	SessionID       uuid.UUID        `gorm:"type:uuid;index" json:"session_id"`
	FileName        string           `gorm:"not null" json:"file_name"`
	FilePath        string           `gorm:"not null" json:"-"`
	MimeType        string           `gorm:"not null" json:"mime_type"`
	Status          SubmissionStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Transcription   string           `gorm:"type:text" json:"transcription,omitempty"`
	Score           string           `gorm:"type:varchar(10)" json:"score,omitempty"`
	MarksAwarded    int              `json:"marks_awarded"`
	TotalMarks      int              `json:"total_marks"`
	Verdict         MarkingVerdict   `gorm:"type:varchar(10)" json:"verdict,omitempty"`
	MissingKeywords datatypes.JSON   `json:"missing_keywords,omitempty"`
	FeedbackText    string           `gorm:"type:text" json:"feedback_text,omitempty"`
	ModelAnswer     string           `gorm:"type:text" json:"model_answer,omitempty"`
	RawResponse     string           `gorm:"type:text" json:"raw_response,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
