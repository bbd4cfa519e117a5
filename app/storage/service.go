package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"aidesk/app/config"

	"github.com/samber/do"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	if dir := filepath.Dir(cfg.DB.Path); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.AutoMigrate(&ChatMessage{}, &AuditLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Service{db: db}, nil
}

func (s *Service) AddChatMessage(ctx context.Context, msg *ChatMessage) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return nil
}

// ListChatMessages returns a user's stored messages, newest first.
func (s *Service) ListChatMessages(ctx context.Context, userID string) ([]ChatMessage, error) {
	var messages []ChatMessage

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	return messages, nil
}

func (s *Service) AddAuditLog(ctx context.Context, entry *AuditLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}

	return nil
}
