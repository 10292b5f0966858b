package repositories

import (
	"errors"
	"fmt"
	"time"

	"psle-tutor-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	CreateSession(session *models.StudentSession) (*models.StudentSession, error)
	GetSessionByID(id string) (*models.StudentSession, error)
	EndSession(id uuid.UUID) error
	GetActiveSessionsWithParentEmail() ([]models.StudentSession, error)
}

// Implementations
type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(session *models.StudentSession) (*models.StudentSession, error) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func (r *sessionRepository) GetSessionByID(id string) (*models.StudentSession, error) {
	var session models.StudentSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) EndSession(id uuid.UUID) error {
	now := time.Now()
	result := r.db.Model(&models.StudentSession{}).
		Where("id = ? AND ended_at IS NULL", id).
		Update("ended_at", &now)
	if result.Error != nil {
		return fmt.Errorf("failed to end session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session %s not found or already ended", id)
	}
	return nil
}

// GetActiveSessionsWithParentEmail feeds the weekly progress mailer.
func (r *sessionRepository) GetActiveSessionsWithParentEmail() ([]models.StudentSession, error) {
	var sessions []models.StudentSession
	err := r.db.Where("parent_email IS NOT NULL AND ended_at IS NULL").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	return sessions, nil
}
