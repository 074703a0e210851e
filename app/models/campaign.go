package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CAMPAIGN_OPEN   = "open"
	CAMPAIGN_CLOSED = "closed"
)

type Campaign struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	BrandID      uint           `gorm:"index;not null" json:"brand_id"`
	Brand        User           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Description  string         `gorm:"type:text" json:"description" validate:"max=5000"`
	Requirements string         `gorm:"type:text" json:"requirements" validate:"max=5000"`
	BudgetMin    *float64       `gorm:"type:decimal(12,2)" json:"budget_min"`
	BudgetMax    *float64       `gorm:"type:decimal(12,2)" json:"budget_max"`
	Status       string         `gorm:"type:varchar(20);default:'open'" json:"status" validate:"oneof=open closed"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Campaign) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsOpen reports whether the campaign still accepts proposals
func (c *Campaign) IsOpen() bool {
	return c.Status == CAMPAIGN_OPEN
}
