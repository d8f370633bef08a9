package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

type TurnRepository struct {
	db *gorm.DB
}

func NewTurnRepository(db *gorm.DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Append persists one turn for a document. It fails with ErrUnknownDocument
// when the document does not exist, and assigns the next per-document
// sequence number so transcript order survives wall-clock collisions.
func (r *TurnRepository) Append(documentID uint, role, content string) (*model.Turn, error) {
	var docCount int64
	if err := r.db.Model(&model.Document{}).Where("id = ?", documentID).Count(&docCount).Error; err != nil {
		return nil, fmt.Errorf("%w: check document failed: %v", ErrStorageUnavailable, err)
	}
	if docCount == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownDocument, documentID)
	}

	var maxSeq uint
	row := r.db.Model(&model.Turn{}).Where("document_id = ?", documentID).Select("COALESCE(MAX(seq), 0)").Row()
	if err := row.Scan(&maxSeq); err != nil {
		return nil, fmt.Errorf("%w: read max seq failed: %v", ErrStorageUnavailable, err)
	}

	turn := &model.Turn{
		DocumentID: documentID,
		Seq:        maxSeq + 1,
		Role:       role,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := r.db.Create(turn).Error; err != nil {
		return nil, fmt.Errorf("%w: create turn failed: %v", ErrStorageUnavailable, err)
	}
	return turn, nil
}

// ListByDocumentID returns all turns for a document in transcript order.
// An unknown document yields an empty slice, not an error.
func (r *TurnRepository) ListByDocumentID(documentID uint) ([]model.Turn, error) {
	var turns []model.Turn
	if err := r.db.Where("document_id = ?", documentID).Order("seq ASC").Find(&turns).Error; err != nil {
		return nil, fmt.Errorf("list turns failed: %w", err)
	}
	return turns, nil
}

// ListRecentByDocumentID returns the last limit turns in ascending order.
func (r *TurnRepository) ListRecentByDocumentID(documentID uint, limit int) ([]model.Turn, error) {
	if limit <= 0 {
		return []model.Turn{}, nil
	}

	var turns []model.Turn
	if err := r.db.Where("document_id = ?", documentID).Order("seq DESC").Limit(limit).Find(&turns).Error; err != nil {
		return nil, fmt.Errorf("list recent turns failed: %w", err)
	}
	// Reverse back to ascending transcript order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
