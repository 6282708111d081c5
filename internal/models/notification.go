package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"size:50;index;not null" json:"username"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Kind      string    `gorm:"size:50" json:"type"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
