package models

import (
	"time"

	"gorm.io/gorm"
)

type BrandProfile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CompanyName string         `gorm:"type:varchar(200)" json:"company_name" validate:"max=200"`
	Website     string         `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`
	Industry    string         `gorm:"type:varchar(100)" json:"industry" validate:"max=100"`
	About       string         `gorm:"type:text" json:"about" validate:"max=2000"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// GetOrCreateBrandProfile loads the profile for a user, creating an empty one on first access
func GetOrCreateBrandProfile(db *gorm.DB, userID uint) (*BrandProfile, error) {
	var profile BrandProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	profile = BrandProfile{UserID: userID}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
