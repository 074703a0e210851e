package models

import (
	"time"

	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// DealTimelineLog is the append-only audit trail of a deal. Entries are
// written in the same transaction as the stage change they record and
// are never updated or deleted afterwards.
type DealTimelineLog struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	DealID    uint            `gorm:"index;not null" json:"deal_id"`
	Deal      Deal            `gorm:"foreignKey:DealID" json:"-"`
	OldStage  dealflow.Stage  `gorm:"type:varchar(30);not null" json:"old_stage"`
	NewStage  dealflow.Stage  `gorm:"type:varchar(30);not null" json:"new_stage"`
	OldStatus dealflow.Status `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus dealflow.Status `gorm:"type:varchar(20)" json:"new_status,omitempty"`
	ChangedBy uint            `gorm:"index;not null" json:"changed_by"`
	Metadata  JSON            `gorm:"type:json" json:"metadata"` // snapshot of the applied patch
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (DealTimelineLog) TableName() string {
	return "deal_timeline_logs"
}
