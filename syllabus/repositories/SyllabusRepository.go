package repositories

import (
	"errors"
	"fmt"

	"psle-tutor-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SyllabusRepository interface {
	UpsertDocument(doc *models.SyllabusDocument) (*models.SyllabusDocument, error)
	ListDocuments() ([]models.SyllabusDocument, error)
	GetDocumentByFileName(fileName string) (*models.SyllabusDocument, error)
}

type syllabusRepository struct {
	db *gorm.DB
}

func NewSyllabusRepository(db *gorm.DB) SyllabusRepository {
	return &syllabusRepository{db: db}
}

// UpsertDocument stores a document, replacing the URI when the same file
// name is uploaded again.
func (r *syllabusRepository) UpsertDocument(doc *models.SyllabusDocument) (*models.SyllabusDocument, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "file_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"gemini_file_uri", "size_bytes"}),
	}).Create(doc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert syllabus document: %w", err)
	}
	return doc, nil
}

func (r *syllabusRepository) ListDocuments() ([]models.SyllabusDocument, error) {
	var docs []models.SyllabusDocument
	err := r.db.Order("file_name ASC").Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list syllabus documents: %w", err)
	}
	return docs, nil
}

func (r *syllabusRepository) GetDocumentByFileName(fileName string) (*models.SyllabusDocument, error) {
	var doc models.SyllabusDocument
	err := r.db.Where("file_name = ?", fileName).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch syllabus document: %w", err)
	}
	return &doc, nil
}
