package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Sender    string    `gorm:"size:50;index;not null" json:"sender"`
	Receiver  string    `gorm:"size:50;index;not null" json:"receiver"`
	Body      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
