package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"psle-tutor-backend/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiModel is used for both quiz generation and worksheet marking,
// matching the tutor's vision-capable tier.
const GeminiModel = "gemini-2.5-flash"

type GeminiService struct {
	client      *genai.Client
	rateLimiter *rate.Limiter
}

type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiService{
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute), 15), // 15 requests per minute
	}, nil
}

// GenerateContentWithRetry sends a text prompt, retrying transient failures
// with exponential backoff. Responses are never cached: the same quiz prompt
// must keep producing fresh questions.
func (g *GeminiService) GenerateContentWithRetry(ctx context.Context, prompt string, retryCfg *RetryConfig) (string, error) {
	if retryCfg == nil {
		retryCfg = &RetryConfig{
			MaxRetries:    3,
			InitialDelay:  time.Second,
			MaxDelay:      time.Minute,
			BackoffFactor: 2.0,
		}
	}

	if err := g.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	var lastErr error
	delay := retryCfg.InitialDelay

	for attempt := 0; attempt <= retryCfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := g.generateContent(ctx, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryableError(err) {
			break
		}

		delay = time.Duration(float64(delay) * retryCfg.BackoffFactor)
		if delay > retryCfg.MaxDelay {
			delay = retryCfg.MaxDelay
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", retryCfg.MaxRetries+1, lastErr)
}

func (g *GeminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	config.Logger.Info("Sending request to Gemini 2.5 Flash",
		zap.String("type", "text"),
		zap.Int("promptLength", len(prompt)),
	)

	parts := []*genai.Part{
		{Text: prompt},
	}
	contents := []*genai.Content{
		{Parts: parts},
	}

	startTime := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, GeminiModel, contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "text"),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)),
		)
		return "", err
	}

	responseText := resp.Text()

	config.Logger.Info("Received response from Gemini 2.5 Flash",
		zap.String("type", "text"),
		zap.Int("responseLength", len(responseText)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return responseText, nil
}

// ProcessImageWithPrompt sends a multimodal request: the marker prompt plus
// the worksheet image bytes.
func (g *GeminiService) ProcessImageWithPrompt(ctx context.Context, imageBytes []byte, mimeType string, prompt string) (string, error) {
	if err := g.rateLimiter.Wait(ctx); err != nil {
		config.Logger.Error("Rate limit exceeded",
			zap.String("type", "image"),
			zap.String("mimeType", mimeType),
			zap.Error(err),
		)
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	config.Logger.Info("Processing worksheet image with Gemini 2.5 Flash",
		zap.String("type", "image"),
		zap.String("mimeType", mimeType),
		zap.Int("fileSize", len(imageBytes)),
	)

	parts := []*genai.Part{
		{Text: prompt},
		{InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     imageBytes,
		}},
	}

	contents := []*genai.Content{
		{Parts: parts},
	}

	resp, err := g.client.Models.GenerateContent(ctx, GeminiModel, contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "image"),
			zap.String("mimeType", mimeType),
			zap.Error(err),
		)
		return "", err
	}

	return resp.Text(), nil
}

// UploadFile pushes a local file (syllabus PDF) to the Gemini Files API and
// returns its server-side name (files/...), usable as a cached reference in
// later prompts.
func (g *GeminiService) UploadFile(ctx context.Context, path string) (string, error) {
	if err := g.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	file, err := g.client.Files.UploadFromPath(ctx, path, nil)
	if err != nil {
		config.Logger.Error("Gemini file upload failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}

	config.Logger.Info("Uploaded file to Gemini Files API",
		zap.String("path", path),
		zap.String("uri", file.Name),
	)

	return file.Name, nil
}

// IsRetryableError reports whether a Gemini failure is worth retrying
// (quota, throttling, transient upstream trouble).
func IsRetryableError(err error) bool {
	errStr := err.Error()
	retryableErrors := []string{
		"rate limit",
		"quota exceeded",
		"temporary",
		"timeout",
		"connection",
		"503",
		"429",
		"internal error",
		"service unavailable",
	}

	for _, retryable := range retryableErrors {
		if strings.Contains(strings.ToLower(errStr), retryable) {
			return true
		}
	}
	return false
}
