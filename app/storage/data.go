package storage

import "time"

// ChatMessage is the durable record of one chat exchange. It is written by
// the API layer only; in-memory session history is never rebuilt from it.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	Message   string    `gorm:"not null" json:"message"`
	Response  string    `gorm:"not null" json:"response"`
	SessionID string    `gorm:"index" json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditLog records which feature a user invoked.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	Action    string    `json:"action"`
	Feature   string    `json:"feature"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}
