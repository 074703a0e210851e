package models

import (
	"time"

	"gorm.io/gorm"
)

type CreatorProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DisplayName   string         `gorm:"type:varchar(150)" json:"display_name" validate:"max=150"`
	Niche         string         `gorm:"type:varchar(100)" json:"niche" validate:"max=100"`
	FollowerCount int64          `gorm:"default:0" json:"follower_count" validate:"min=0"`
	Platforms     *JSON          `gorm:"type:json" json:"platforms"` // handle -> profile URL
	RateCard      *JSON          `gorm:"type:json" json:"rate_card"` // content type -> price
	About         string         `gorm:"type:text" json:"about" validate:"max=2000"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// GetOrCreateCreatorProfile loads the profile for a user, creating an empty one on first access
func GetOrCreateCreatorProfile(db *gorm.DB, userID uint) (*CreatorProfile, error) {
	var profile CreatorProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	profile = CreatorProfile{UserID: userID}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
