package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"psle-tutor-backend/db/models"
	marker_services "psle-tutor-backend/marker/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorksheetRepository interface {
	CreateSubmission(submission *models.WorksheetSubmission) (*models.WorksheetSubmission, error)
	GetSubmissionByID(id string) (*models.WorksheetSubmission, error)
	MarkInProgress(id uuid.UUID) error
	SaveFeedback(id uuid.UUID, payload *marker_services.FeedbackPayload) error
	MarkFailed(id uuid.UUID, reason, rawResponse string) error
}

// Implementations
type worksheetRepository struct {
	db *gorm.DB
}

func NewWorksheetRepository(db *gorm.DB) WorksheetRepository {
	return &worksheetRepository{db: db}
}

func (r *worksheetRepository) CreateSubmission(submission *models.WorksheetSubmission) (*models.WorksheetSubmission, error) {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	submission.Status = models.SubmissionPending
	if err := r.db.Create(submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

func (r *worksheetRepository) GetSubmissionByID(id string) (*models.WorksheetSubmission, error) {
	var submission models.WorksheetSubmission
	err := r.db.Where("id = ?", id).First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return &submission, nil
}

func (r *worksheetRepository) MarkInProgress(id uuid.UUID) error {
	return r.updateStatus(id, models.SubmissionMarking)
}

func (r *worksheetRepository) updateStatus(id uuid.UUID, status models.SubmissionStatus) error {
	err := r.db.Model(&models.WorksheetSubmission{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	return nil
}

// SaveFeedback stores the parsed marker verdict and flips the submission to
// marked in one update.
func (r *worksheetRepository) SaveFeedback(id uuid.UUID, payload *marker_services.FeedbackPayload) error {
	awarded, total := marker_services.ParseScore(payload.Score)

	keywordsJSON, err := json.Marshal(payload.MissingKeywords)
	if err != nil {
		return fmt.Errorf("failed to encode missing keywords: %w", err)
	}

	updates := map[string]interface{}{
		"status":           models.SubmissionMarked,
		"transcription":    payload.Transcription,
		"score":            payload.Score,
		"marks_awarded":    awarded,
		"total_marks":      total,
		"verdict":          payload.Verdict,
		"missing_keywords": keywordsJSON,
		"feedback_text":    payload.FeedbackText,
		"model_answer":     payload.ModelAnswer,
		"raw_response":     "",
	}

	err = r.db.Model(&models.WorksheetSubmission{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// MarkFailed keeps the unparsed model output so the raw feedback can still
// be shown.
func (r *worksheetRepository) MarkFailed(id uuid.UUID, reason, rawResponse string) error {
	updates := map[string]interface{}{
		"status":        models.SubmissionFailed,
		"feedback_text": reason,
		"raw_response":  rawResponse,
	}
	err := r.db.Model(&models.WorksheetSubmission{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to mark submission failed: %w", err)
	}
	return nil
}
