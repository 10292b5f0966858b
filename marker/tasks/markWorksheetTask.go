package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"psle-tutor-backend/config"
	internal_services "psle-tutor-backend/internal/services"
	"psle-tutor-backend/marker/repositories"
	"psle-tutor-backend/marker/services"
	ws "psle-tutor-backend/websocket"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeMarkWorksheet = "worksheet:mark"

// MarkWorksheetPayload carries the submission to be marked
type MarkWorksheetPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
}

// NewMarkWorksheetTask builds the queue task for a submission
func NewMarkWorksheetTask(submissionID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(MarkWorksheetPayload{SubmissionID: submissionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mark worksheet payload: %w", err)
	}
	return asynq.NewTask(TypeMarkWorksheet, payload,
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	), nil
}

// MarkWorksheetProcessor runs queued marking jobs against the AI model
type MarkWorksheetProcessor struct {
	worksheetRepo repositories.WorksheetRepository
	gemini        *internal_services.GeminiService
	hub           *ws.Hub
}

func NewMarkWorksheetProcessor(
	worksheetRepo repositories.WorksheetRepository,
	gemini *internal_services.GeminiService,
	hub *ws.Hub,
) *MarkWorksheetProcessor {
	return &MarkWorksheetProcessor{
		worksheetRepo: worksheetRepo,
		gemini:        gemini,
		hub:           hub,
	}
}

// ProcessTask marks one worksheet submission. Transient model errors are
// returned so asynq retries; anything unrecoverable marks the submission
// failed and consumes the task.
func (p *MarkWorksheetProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload MarkWorksheetPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal mark worksheet payload: %v: %w", err, asynq.SkipRetry)
	}

	submission, err := p.worksheetRepo.GetSubmissionByID(payload.SubmissionID.String())
	if err != nil {
		return fmt.Errorf("failed to load submission %s: %w", payload.SubmissionID, err)
	}
	if submission == nil {
		config.Logger.Warn("Submission no longer exists, dropping marking task",
			zap.String("submissionID", payload.SubmissionID.String()),
		)
		return nil
	}

	if err := p.worksheetRepo.MarkInProgress(submission.ID); err != nil {
		return fmt.Errorf("failed to mark submission in progress: %w", err)
	}

	imageBytes, err := os.ReadFile(submission.FilePath)
	if err != nil {
		config.Logger.Error("Worksheet image unreadable",
			zap.String("submissionID", submission.ID.String()),
			zap.String("filePath", submission.FilePath),
			zap.Error(err),
		)
		return p.failSubmission(submission.ID, submission.SessionID, "Uploaded worksheet image could not be read", "")
	}

	rawResponse, err := p.gemini.ProcessImageWithPrompt(ctx, imageBytes, submission.MimeType, services.MarkerPrompt)
	if err != nil {
		if internal_services.IsRetryableError(err) {
			config.Logger.Warn("Transient model error marking worksheet, will retry",
				zap.String("submissionID", submission.ID.String()),
				zap.Error(err),
			)
			return fmt.Errorf("transient model error: %w", err)
		}
		return p.failSubmission(submission.ID, submission.SessionID, "The marking model could not process this worksheet", "")
	}

	feedback, err := services.ParseFeedbackPayload(rawResponse)
	if err != nil {
		config.Logger.Error("Unparseable marking response",
			zap.String("submissionID", submission.ID.String()),
			zap.Error(err),
		)
		return p.failSubmission(submission.ID, submission.SessionID, "The marking response could not be understood", rawResponse)
	}

	if err := p.worksheetRepo.SaveFeedback(submission.ID, feedback); err != nil {
		return fmt.Errorf("failed to save marking feedback: %w", err)
	}

	awarded, total := services.ParseScore(feedback.Score)
	p.hub.NotifySession(submission.SessionID, ws.WebSocketMessage{
		Type: ws.MessageTypeWorksheetMarked,
		Payload: map[string]interface{}{
			"submission_id":    submission.ID.String(),
			"score":            feedback.Score,
			"marks_awarded":    awarded,
			"total_marks":      total,
			"verdict":          feedback.Verdict,
			"transcription":    feedback.Transcription,
			"missing_keywords": feedback.MissingKeywords,
			"feedback_text":    feedback.FeedbackText,
			"model_answer":     feedback.ModelAnswer,
		},
	})

	config.Logger.Info("Worksheet marked",
		zap.String("submissionID", submission.ID.String()),
		zap.String("verdict", feedback.Verdict),
		zap.String("score", feedback.Score),
	)
	return nil
}

func (p *MarkWorksheetProcessor) failSubmission(submissionID, sessionID uuid.UUID, reason, rawResponse string) error {
	if err := p.worksheetRepo.MarkFailed(submissionID, reason, rawResponse); err != nil {
		return fmt.Errorf("failed to record submission failure: %w", err)
	}
	p.hub.NotifySession(sessionID, ws.WebSocketMessage{
		Type: ws.MessageTypeWorksheetFailed,
		Payload: map[string]interface{}{
			"submission_id": submissionID.String(),
			"reason":        reason,
		},
	})
	// Unrecoverable, do not retry
	return nil
}
