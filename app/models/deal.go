package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// Deal is a tracked sponsorship engagement between one brand and one
// creator. Deals are never physically deleted; termination is a status
// change, which is why there is no DeletedAt column here.
type Deal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	BrandID     uint      `gorm:"index;not null" json:"brand_id"`
	Brand       User      `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CreatorID   uint      `gorm:"index;not null" json:"creator_id"`
	Creator     User      `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CampaignID  *uint     `gorm:"index" json:"campaign_id"`
	Campaign    *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Description string    `gorm:"type:text" json:"description" validate:"max=5000"`
	Budget      *float64  `gorm:"type:decimal(12,2)" json:"budget"`

	CurrentStage  dealflow.Stage  `gorm:"type:varchar(30);not null;default:'offer'" json:"current_stage"`
	StageMetadata JSON            `gorm:"type:json" json:"stage_metadata"`
	Status        dealflow.Status `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CancellationReason string `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CancelledBy        *uint  `json:"cancelled_by,omitempty"`

	AgreementSignedAt *time.Time `gorm:"type:timestamp;default:null" json:"agreement_signed_at"`
	CompletedAt       *time.Time `gorm:"type:timestamp;default:null" json:"completed_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Deal) Validate() error {
	v := validator.New()

	return v.Struct(d)
}

// BeforeCreate assigns a UUID and the initial lifecycle state
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	if d.CurrentStage == "" {
		d.CurrentStage = dealflow.StageOffer
	}
	if d.Status == "" {
		d.Status = dealflow.StatusActive
	}
	if len(d.StageMetadata) == 0 {
		d.StageMetadata = JSON("{}")
	}
	return nil
}

// IsParty reports whether the given user is the brand or the creator on this deal
func (d *Deal) IsParty(userID uint) bool {
	return userID == d.BrandID || userID == d.CreatorID
}

// Counterparty returns the other side of the deal for the given party
func (d *Deal) Counterparty(userID uint) uint {
	if userID == d.BrandID {
		return d.CreatorID
	}
	return d.BrandID
}

// IsActive reports whether stage progress is still possible
func (d *Deal) IsActive() bool {
	return !d.Status.Terminal()
}

// MetadataMap decodes the stage metadata column into a map
func (d *Deal) MetadataMap() (map[string]interface{}, error) {
	return d.StageMetadata.AsMap()
}

// Snapshot builds the state view the transition engine validates against
func (d *Deal) Snapshot() (dealflow.Snapshot, error) {
	meta, err := d.MetadataMap()
	if err != nil {
		return dealflow.Snapshot{}, err
	}
	return dealflow.Snapshot{
		BrandID:   d.BrandID,
		CreatorID: d.CreatorID,
		Stage:     d.CurrentStage,
		Status:    d.Status,
		Metadata:  meta,
	}, nil
}
