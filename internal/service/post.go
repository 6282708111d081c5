package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
	"github.com/finstagram/backend/internal/storage"
)

// FeedItem is a post joined with the poster's current avatar filename.
type FeedItem struct {
	Post   models.Post
	Avatar string // stored filename, empty when the poster has no avatar
}

// PostService handles uploads and the global feed.
type PostService struct {
	db       *gorm.DB
	media    storage.MediaStore
	profiles *ProfileService
}

func NewPostService(db *gorm.DB, media storage.MediaStore, profiles *ProfileService) *PostService {
	return &PostService{db: db, media: media, profiles: profiles}
}

// Create stores the upload and persists the post. The stored name carries a
// timestamp so identical originals from the same user cannot collide, and
// the video flag is decided here, once, from the extension.
func (s *PostService) Create(ctx context.Context, username, caption, original string, r io.Reader, size int64, contentType string) (*models.Post, error) {
	filename := storage.PostFilename(username, original, time.Now())
	if err := s.media.Save(ctx, filename, r, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	post := models.Post{
		Username: username,
		Filename: filename,
		Caption:  caption,
		IsVideo:  storage.IsVideoFilename(filename),
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Feed returns all posts newest-first, each joined with the poster's current
// avatar. videosOnly narrows the listing to reels.
func (s *PostService) Feed(ctx context.Context, videosOnly bool) ([]FeedItem, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if videosOnly {
		q = q.Where("is_video = ?", true)
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(posts))
	seen := make(map[string]bool)
	for _, p := range posts {
		if !seen[p.Username] {
			seen[p.Username] = true
			usernames = append(usernames, p.Username)
		}
	}

	avatars, err := s.profiles.AvatarsFor(ctx, usernames)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, len(posts))
	for i, p := range posts {
		items[i] = FeedItem{Post: p, Avatar: avatars[p.Username]}
	}
	return items, nil
}
