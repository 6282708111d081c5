package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// welcomeMessages are inserted for every new account so the notifications
// feed is never empty on first login.
var welcomeMessages = []string{
	"Welcome to Finstagram!",
	"Try uploading your first photo!",
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup creates a new user. There is no existence pre-check: the insert
// races straight into the uniqueness constraint and the duplicate-key error
// is the sole conflict signal.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	for _, msg := range welcomeMessages {
		notif := models.Notification{
			Username: username,
			Message:  msg,
			Kind:     "welcome",
		}
		if err := s.db.WithContext(ctx).Create(&notif).Error; err != nil {
			// The account exists either way; a missing welcome note is not
			// worth failing the signup over.
			log.Printf("failed to create welcome notification for %s: %v", username, err)
		}
	}

	return &user, nil
}

// Login verifies the credentials and reports whether the user has created a
// profile yet. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (hasProfile bool, err error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrInvalidCredentials
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, ErrInvalidCredentials
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
