package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
)

// ChatCandidate is a user that can be messaged, with their avatar if any.
type ChatCandidate struct {
	Username string
	Avatar   string
}

type MessageService struct {
	db       *gorm.DB
	profiles *ProfileService
}

func NewMessageService(db *gorm.DB, profiles *ProfileService) *MessageService {
	return &MessageService{db: db, profiles: profiles}
}

// Send persists a message with a server-assigned timestamp.
func (s *MessageService) Send(ctx context.Context, sender, receiver, text string) (*models.Message, error) {
	msg := models.Message{
		Sender:   sender,
		Receiver: receiver,
		Body:     text,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// Conversation returns the two-party history oldest-first. The match is
// symmetric: either participant may be the sender.
func (s *MessageService) Conversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ChatCandidates returns every other user joined with their avatar, used to
// populate the start-a-new-chat list.
func (s *MessageService) ChatCandidates(ctx context.Context, self string) ([]ChatCandidate, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("username <> ?", self).
		Order("username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	usernames := make([]string, len(users))
	for i, u := range users {
		usernames[i] = u.Username
	}

	avatars, err := s.profiles.AvatarsFor(ctx, usernames)
	if err != nil {
		return nil, err
	}

	candidates := make([]ChatCandidate, len(users))
	for i, u := range users {
		candidates[i] = ChatCandidate{Username: u.Username, Avatar: avatars[u.Username]}
	}
	return candidates, nil
}
