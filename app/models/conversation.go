package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a private message thread between two users. When it
// belongs to a deal the deal link is set exactly once and never changed;
// the conversation gate derives chat permission from that deal's status.
type Conversation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UUID    string `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	UserAID uint   `gorm:"not null;index:idx_conversation_pair,priority:1" json:"user_a_id"`
	UserA   User   `gorm:"foreignKey:UserAID" json:"user_a,omitempty"`
	UserBID uint   `gorm:"not null;index:idx_conversation_pair,priority:2" json:"user_b_id"`
	UserB   User   `gorm:"foreignKey:UserBID" json:"user_b,omitempty"`
	DealID  *uint  `gorm:"uniqueIndex" json:"deal_id"`
	Deal    *Deal  `gorm:"foreignKey:DealID" json:"deal,omitempty"`

	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a UUID and normalizes the participant pair
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	c.UserAID, c.UserBID = NormalizePair(c.UserAID, c.UserBID)
	return nil
}

// NormalizePair orders a participant pair so (a,b) and (b,a) hit the
// same unique index.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// HasParticipant reports whether the user belongs to this conversation
func (c *Conversation) HasParticipant(userID uint) bool {
	return userID == c.UserAID || userID == c.UserBID
}

// IsDealLinked reports whether the conversation is bound to a deal
func (c *Conversation) IsDealLinked() bool {
	return c.DealID != nil
}
