package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"psle-tutor-backend/db/models"
	internal_services "psle-tutor-backend/internal/services"
	"psle-tutor-backend/syllabus/repositories"
)

// UploadResult summarizes one folder upload run.
type UploadResult struct {
	Uploaded []models.SyllabusDocument
	Failed   map[string]error
}

// SyllabusUploadService pushes reference PDFs to the Gemini Files API and
// records their URIs.
type SyllabusUploadService struct {
	gemini *internal_services.GeminiService
	repo   repositories.SyllabusRepository
}

func NewSyllabusUploadService(gemini *internal_services.GeminiService, repo repositories.SyllabusRepository) *SyllabusUploadService {
	return &SyllabusUploadService{
		gemini: gemini,
		repo:   repo,
	}
}

// ScanFolder lists the PDF files in folder, sorted by name. A missing folder
// is an error; an existing but empty folder returns an empty slice.
func ScanFolder(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("folder %q not found", folder)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %q: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a folder", folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %q: %w", folder, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, entry.Name())
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// UploadFile uploads a single PDF and records its Gemini file URI.
func (s *SyllabusUploadService) UploadFile(ctx context.Context, path string) (*models.SyllabusDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	uri, err := s.gemini.UploadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %q: %w", filepath.Base(path), err)
	}

	doc, err := s.repo.UpsertDocument(&models.SyllabusDocument{
		FileName:      filepath.Base(path),
		GeminiFileURI: uri,
		SizeBytes:     info.Size(),
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UploadFolder uploads every PDF in folder, continuing past per-file
// failures so one bad file does not abort the batch.
func (s *SyllabusUploadService) UploadFolder(ctx context.Context, folder string) (*UploadResult, error) {
	pdfs, err := ScanFolder(folder)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		Failed: make(map[string]error),
	}
	for _, name := range pdfs {
		doc, err := s.UploadFile(ctx, filepath.Join(folder, name))
		if err != nil {
			result.Failed[name] = err
			continue
		}
		result.Uploaded = append(result.Uploaded, *doc)
	}
	return result, nil
}
