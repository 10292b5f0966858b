package services

import (
	"fmt"
	"strings"
	"time"

	"psle-tutor-backend/config"
	dashboard_repositories "psle-tutor-backend/dashboard/repositories"
	dashboard_services "psle-tutor-backend/dashboard/services"
	"psle-tutor-backend/db/models"
	sessions_repositories "psle-tutor-backend/sessions/repositories"
	"psle-tutor-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressReportService emails parents a weekly summary of their child's
// quiz activity.
type ProgressReportService struct {
	sessionRepo   sessions_repositories.SessionRepository
	dashboardRepo dashboard_repositories.DashboardRepository
	db            *gorm.DB
}

func NewProgressReportService(
	sessionRepo sessions_repositories.SessionRepository,
	dashboardRepo dashboard_repositories.DashboardRepository,
	db *gorm.DB,
) *ProgressReportService {
	return &ProgressReportService{
		sessionRepo:   sessionRepo,
		dashboardRepo: dashboardRepo,
		db:            db,
	}
}

// SendProgressReports emails every active session that registered a parent
// email. Per-session failures are logged and skipped so one bad address does
// not stop the run.
func (s *ProgressReportService) SendProgressReports() error {
	sessions, err := s.sessionRepo.GetActiveSessionsWithParentEmail()
	if err != nil {
		return fmt.Errorf("failed to load sessions for progress reports: %w", err)
	}

	var sent, failed int
	for _, session := range sessions {
		if session.ParentEmail == nil || strings.TrimSpace(*session.ParentEmail) == "" {
			continue
		}
		if err := s.sendReport(&session); err != nil {
			failed++
			config.Logger.Error("Failed to send progress report",
				zap.String("sessionID", session.ID.String()),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	config.Logger.Info("Progress report run finished",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return nil
}

func (s *ProgressReportService) sendReport(session *models.StudentSession) error {
	summary, err := s.dashboardRepo.GetSessionSummary(session.ID)
	if err != nil {
		return err
	}
	if summary.TotalQuestions == 0 {
		// Nothing to report yet
		return nil
	}

	topics, err := s.dashboardRepo.GetTopicStats(session.ID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("PSLE Science progress report for %s", session.DisplayName)
	body := buildReportBody(session.DisplayName, summary, topics)

	if err := utils.SendEmail(*session.ParentEmail, subject, body); err != nil {
		return err
	}

	emailLog := &models.EmailLog{
		ID:        uuid.New(),
		Recipient: *session.ParentEmail,
		Subject:   subject,
		Message:   body,
		SentAt:    time.Now().In(utils.DateLocation),
	}
	if err := s.db.Create(emailLog).Error; err != nil {
		config.Logger.Warn("Failed to record email log",
			zap.String("recipient", *session.ParentEmail),
			zap.Error(err),
		)
	}
	return nil
}

func buildReportBody(displayName string, summary *dashboard_services.SummaryStats, topics []dashboard_services.TopicStat) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Progress report for %s</h2>", displayName))
	b.WriteString("<p>Here is a summary of recent PSLE Science practice:</p>")
	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li>Questions answered: %d</li>", summary.TotalQuestions))
	b.WriteString(fmt.Sprintf("<li>Correct answers: %d</li>", summary.CorrectAnswers))
	b.WriteString(fmt.Sprintf("<li>Accuracy: %s%%</li>", summary.Accuracy.String()))
	b.WriteString(fmt.Sprintf("<li>Total score: %d points</li>", summary.Score))
	b.WriteString("</ul>")

	if len(topics) > 0 {
		b.WriteString("<h3>By topic</h3>")
		b.WriteString("<table border=\"1\" cellpadding=\"4\" cellspacing=\"0\">")
		b.WriteString("<tr><th>Topic</th><th>Attempted</th><th>Correct</th><th>Accuracy</th></tr>")
		for _, topic := range topics {
			b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%d</td><td>%s%%</td></tr>",
				topic.Topic, topic.Attempted, topic.Correct, topic.Accuracy.String()))
		}
		b.WriteString("</table>")
	}

	b.WriteString("<p>Keep up the practice!</p>")
	return b.String()
}

// RunWeeklyProgressReports schedules the mailer every Sunday at 6 PM.
func (s *ProgressReportService) RunWeeklyProgressReports() {
	c := cron.New()
	c.AddFunc("0 18 * * 0", func() {
		if err := s.SendProgressReports(); err != nil {
			config.Logger.Error("Progress report run failed", zap.Error(err))
		}
	})
	c.Start()
}
