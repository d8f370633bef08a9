package model

import "time"

// Document is an uploaded reference text that grounds a chat transcript.
// Rows are write-once: a new upload always creates a new Document, and the
// most recently created one is the "current" document.
type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
