package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns the user's notifications newest-first.
func (s *NotificationService) List(ctx context.Context, username string) ([]models.Notification, error) {
	var notifs []models.Notification
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&notifs).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}
