package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Message struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ConversationID uint         `gorm:"index;not null" json:"conversation_id"`
	Conversation   Conversation `gorm:"foreignKey:ConversationID" json:"-"`
	SenderID       uint         `gorm:"index;not null" json:"sender_id"`
	Sender         User         `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Body           string       `gorm:"type:text;not null" json:"body" validate:"required,max=10000"`
	ReadAt         *time.Time   `gorm:"type:timestamp;default:null" json:"read_at"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
