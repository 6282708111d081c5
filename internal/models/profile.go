package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is keyed by username, one-to-one with User. Profile edits replace
// FullName/Bio/Location wholesale; ProfilePic is only touched by the avatar
// upload path.
type Profile struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Username   string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	FullName   string    `gorm:"size:255" json:"full_name"`
	Bio        string    `gorm:"type:text" json:"bio"`
	Location   string    `gorm:"size:255" json:"location"`
	ProfilePic string    `gorm:"size:255" json:"profile_pic"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
