package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post records one uploaded photo or video. IsVideo is decided once at write
// time from the filename extension rather than re-derived on every read.
type Post struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"size:50;index;not null" json:"username"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	Caption   string    `gorm:"type:text" json:"caption"`
	IsVideo   bool      `json:"is_video"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
