package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
	"github.com/finstagram/backend/internal/storage"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles profile upserts, reads and avatar uploads.
type ProfileService struct {
	db    *gorm.DB
	media storage.MediaStore
}

func NewProfileService(db *gorm.DB, media storage.MediaStore) *ProfileService {
	return &ProfileService{db: db, media: media}
}

// CreateOrReplace upserts the profile keyed by username. Name, bio and
// location are overwritten wholesale; the picture reference is never touched
// here, only by UploadAvatar.
func (s *ProfileService) CreateOrReplace(ctx context.Context, username, fullName, bio, location string) error {
	updates := map[string]interface{}{
		"full_name": fullName,
		"bio":       bio,
		"location":  location,
	}

	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("username = ?", username).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	profile := models.Profile{
		Username: username,
		FullName: fullName,
		Bio:      bio,
		Location: location,
	}
	err := s.db.WithContext(ctx).Create(&profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a create race; the row exists now, so update it.
		return s.db.WithContext(ctx).Model(&models.Profile{}).
			Where("username = ?", username).Updates(updates).Error
	}
	return err
}

// Get returns the profile and the user's posts newest-first.
func (s *ProfileService) Get(ctx context.Context, username string) (*models.Profile, []models.Post, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	var posts []models.Post
	if err := s.db.WithContext(ctx).Where("username = ?", username).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, nil, err
	}

	return &profile, posts, nil
}

// UploadAvatar stores the picture under a deterministic name and points the
// profile at it, creating the profile row if it does not exist yet. A repeat
// upload with the same original name overwrites the stored file.
func (s *ProfileService) UploadAvatar(ctx context.Context, username, original string, r io.Reader, size int64, contentType string) (string, error) {
	filename := storage.AvatarFilename(username, original)
	if err := s.media.Save(ctx, filename, r, size, contentType); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("username = ?", username).Update("profile_pic", filename)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		profile := models.Profile{
			Username:   username,
			ProfilePic: filename,
			CreatedAt:  time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
	}

	return filename, nil
}

// AvatarsFor returns the profile_pic filename for each of the given
// usernames in one query. Usernames without a profile or picture are absent
// from the result.
func (s *ProfileService) AvatarsFor(ctx context.Context, usernames []string) (map[string]string, error) {
	avatars := make(map[string]string)
	if len(usernames) == 0 {
		return avatars, nil
	}

	var profiles []models.Profile
	if err := s.db.WithContext(ctx).
		Select("username", "profile_pic").
		Where("username IN ?", usernames).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.ProfilePic != "" {
			avatars[p.Username] = p.ProfilePic
		}
	}
	return avatars, nil
}
