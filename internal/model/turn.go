package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message (question or answer) in a document's transcript.
// Seq is a per-document sequence assigned at write time; transcript order
// is seq ASC, which stays stable even when CreatedAt resolution collapses
// under rapid successive writes.
type Turn struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DocumentID uint      `gorm:"not null;index" json:"document_id"`
	Seq        uint      `gorm:"not null;index:idx_turn_doc_seq" json:"seq"`
	Role       string    `gorm:"size:16;not null" json:"role"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
