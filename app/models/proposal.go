package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	PROPOSAL_PENDING   = "pending"
	PROPOSAL_ACCEPTED  = "accepted"
	PROPOSAL_DECLINED  = "declined"
	PROPOSAL_WITHDRAWN = "withdrawn"
)

// Proposal is a brand's collaboration offer to a creator. Accepting a
// pending proposal is what creates the Deal.
type Proposal struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CampaignID     *uint          `gorm:"index" json:"campaign_id"`
	Campaign       *Campaign      `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	BrandID        uint           `gorm:"index;not null" json:"brand_id"`
	Brand          User           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CreatorID      uint           `gorm:"index;not null" json:"creator_id"`
	Creator        User           `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Message        string         `gorm:"type:text" json:"message" validate:"max=5000"`
	ProposedBudget *float64       `gorm:"type:decimal(12,2)" json:"proposed_budget"`
	Status         string         `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"oneof=pending accepted declined withdrawn"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Proposal) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// IsPending reports whether the proposal is still open for a decision
func (p *Proposal) IsPending() bool {
	return p.Status == PROPOSAL_PENDING
}
