package repositories

import (
	"errors"
	"fmt"

	"psle-tutor-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateQuestion(question *models.QuizQuestion) (*models.QuizQuestion, error)
	GetQuestionByID(id string) (*models.QuizQuestion, error)
	CreateAttempt(attempt *models.QuizAttempt) (*models.QuizAttempt, error)
	GetFilteredAttempts(sessionID uuid.UUID, pageSize int, offset int, filters map[string]string) ([]models.QuizAttempt, int64, error)
}

// Implementations
type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateQuestion(question *models.QuizQuestion) (*models.QuizQuestion, error) {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	if err := r.db.Create(question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (r *quizRepository) GetQuestionByID(id string) (*models.QuizQuestion, error) {
	var question models.QuizQuestion
	err := r.db.Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question: %w", err)
	}
	return &question, nil
}

func (r *quizRepository) CreateAttempt(attempt *models.QuizAttempt) (*models.QuizAttempt, error) {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if err := r.db.Create(attempt).Error; err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	return attempt, nil
}

func (r *quizRepository) GetFilteredAttempts(sessionID uuid.UUID, pageSize int, offset int, filters map[string]string) ([]models.QuizAttempt, int64, error) {
	var attempts []models.QuizAttempt
	var total int64

	query := r.db.Model(&models.QuizAttempt{}).Where("session_id = ?", sessionID)

	if topic, ok := filters["topic"]; ok && topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if difficulty, ok := filters["difficulty"]; ok && difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&attempts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch attempts: %w", err)
	}

	return attempts, total, nil
}
