package repositories

import (
	"fmt"

	"psle-tutor-backend/dashboard/services"
	"psle-tutor-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetSessionSummary(sessionID uuid.UUID) (*services.SummaryStats, error)
	GetTopicStats(sessionID uuid.UUID) ([]services.TopicStat, error)
	GetAttemptHistory(sessionID uuid.UUID, pageSize, offset int) ([]models.QuizAttempt, int64, error)
	GetAllAttempts(sessionID uuid.UUID) ([]models.QuizAttempt, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetSessionSummary(sessionID uuid.UUID) (*services.SummaryStats, error) {
	var row struct {
		TotalQuestions int64
		CorrectAnswers int64
		Score          int64
		TopicsCovered  int64
	}

	err := r.db.Model(&models.QuizAttempt{}).
		Where("session_id = ?", sessionID).
		Select("COUNT(*) as total_questions, " +
			"COUNT(CASE WHEN is_correct THEN 1 END) as correct_answers, " +
			"COALESCE(SUM(points_awarded), 0) as score, " +
			"COUNT(DISTINCT topic) as topics_covered").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session summary: %w", err)
	}

	return &services.SummaryStats{
		TotalQuestions: row.TotalQuestions,
		CorrectAnswers: row.CorrectAnswers,
		Accuracy:       services.AccuracyPercent(row.CorrectAnswers, row.TotalQuestions),
		Score:          row.Score,
		TopicsCovered:  row.TopicsCovered,
	}, nil
}

func (r *dashboardRepository) GetTopicStats(sessionID uuid.UUID) ([]services.TopicStat, error) {
	var rows []struct {
		Topic     string
		Attempted int64
		Correct   int64
	}

	err := r.db.Model(&models.QuizAttempt{}).
		Where("session_id = ?", sessionID).
		Select("topic, COUNT(*) as attempted, COUNT(CASE WHEN is_correct THEN 1 END) as correct").
		Group("topic").
		Order("topic ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate topic stats: %w", err)
	}

	stats := make([]services.TopicStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, services.TopicStat{
			Topic:     row.Topic,
			Attempted: row.Attempted,
			Correct:   row.Correct,
			Accuracy:  services.AccuracyPercent(row.Correct, row.Attempted),
		})
	}
	return stats, nil
}

func (r *dashboardRepository) GetAttemptHistory(sessionID uuid.UUID, pageSize, offset int) ([]models.QuizAttempt, int64, error) {
	var attempts []models.QuizAttempt
	var totalCount int64

	query := r.db.Model(&models.QuizAttempt{}).Where("session_id = ?", sessionID)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&attempts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch attempt history: %w", err)
	}

	return attempts, totalCount, nil
}

func (r *dashboardRepository) GetAllAttempts(sessionID uuid.UUID) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attempts for export: %w", err)
	}
	return attempts, nil
}
