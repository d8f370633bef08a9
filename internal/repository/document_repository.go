package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create persists a new document. Documents are write-once; there is no
// update path.
func (r *DocumentRepository) Create(doc *model.Document) error {
	if err := r.db.Create(doc).Error; err != nil {
		return fmt.Errorf("%w: create document failed: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// GetCurrent returns the most recently uploaded document, ties broken by
// id descending. Returns nil when no document has been uploaded yet.
func (r *DocumentRepository) GetCurrent() (*model.Document, error) {
	var doc model.Document
	if err := r.db.Order("created_at DESC, id DESC").First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current document failed: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) GetByID(id uint) (*model.Document, error) {
	var doc model.Document
	if err := r.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document failed: %w", err)
	}
	return &doc, nil
}

// Exists reports whether a document row exists; used as the write-time
// referential check before appending turns.
func (r *DocumentRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Document{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check document exists failed: %w", err)
	}
	return count > 0, nil
}
