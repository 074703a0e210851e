package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/dealevents"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
	"github.com/creatorconnect/backend/internal/pkg/env"
)

// Uniqueness keys for "one active deal" enforcement. The reference
// behavior is ambiguous between per-pair and per-campaign, so the key
// is configured instead of guessed (DEAL_UNIQUENESS env).
const (
	UniquenessPair     = "pair"
	UniquenessCampaign = "campaign"
)

// dealRepository implements the DealRepository interface
type dealRepository struct {
	db         *gorm.DB
	uniqueness string
	events     *dealevents.Dispatcher
}

// NewDealRepository creates a new deal repository instance
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{
		db:         db,
		uniqueness: DealUniquenessKey(env.GetEnv("DEAL_UNIQUENESS", UniquenessPair)),
		events:     dealevents.GetDispatcher(),
	}
}

// DealUniquenessKey normalizes the configured uniqueness mode, falling
// back to per-pair for anything unknown.
func DealUniquenessKey(configured string) string {
	if configured == UniquenessCampaign {
		return UniquenessCampaign
	}
	return UniquenessPair
}

// Create opens a new deal at offer/active. A conversation for the pair
// is linked to the deal in the same transaction; the gate keeps it
// locked until the creator accepts.
func (r *dealRepository) Create(input CreateDealInput) (*models.Deal, error) {
	deal := &models.Deal{
		BrandID:     input.BrandID,
		CreatorID:   input.CreatorID,
		CampaignID:  input.CampaignID,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Deal{}).
			Where("brand_id = ? AND creator_id = ? AND status = ?", input.BrandID, input.CreatorID, dealflow.StatusActive)
		if r.uniqueness == UniquenessCampaign {
			query = query.Where("campaign_id <=> ?", input.CampaignID)
		}

		var existing int64
		if err := query.Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateDeal
		}

		if err := tx.Create(deal).Error; err != nil {
			return err
		}

		conv := &models.Conversation{
			UserAID: input.BrandID,
			UserBID: input.CreatorID,
			DealID:  &deal.ID,
		}
		return tx.Create(conv).Error
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

// GetByID retrieves a deal by its ID
func (r *dealRepository) GetByID(id uint) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.First(&deal, id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetByUUID retrieves a deal by its public UUID
func (r *dealRepository) GetByUUID(uuid string) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.Where("uuid = ?", uuid).First(&deal).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// ListByUser retrieves a paginated list of deals the user is a party to
func (r *dealRepository) ListByUser(userID uint, offset, limit int) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.Where("brand_id = ? OR creator_id = ?", userID, userID).
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&deals).Error
	return deals, err
}

// ApplyTransition validates and applies a stage change as one atomic
// unit: read, validate, compare-and-swap write, timeline entry. The
// guarded update re-checks (current_stage, status, stage_metadata)
// immediately before commit; the metadata document must still be the
// one the merge ran against, so a concurrent commit on a re-entrant
// edge (where stage and status do not change) is detected too. If
// another request won the race the whole unit rolls back with
// ErrConcurrentModification.
func (r *dealRepository) ApplyTransition(dealID, actorID uint, target dealflow.Stage, patch map[string]interface{}, notes string) (*models.Deal, error) {
	var (
		updated models.Deal
		event   dealevents.Event
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var deal models.Deal
		if err := tx.First(&deal, dealID).Error; err != nil {
			return err
		}

		snap, err := deal.Snapshot()
		if err != nil {
			return err
		}

		result, err := dealflow.Transition(snap, actorID, target, patch)
		if err != nil {
			return err
		}

		metaJSON, err := models.MapToJSON(result.Metadata)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"current_stage":  result.Stage,
			"status":         result.Status,
			"stage_metadata": metaJSON,
		}
		now := time.Now()
		if result.StampAgreementSigned && deal.AgreementSignedAt == nil {
			updates["agreement_signed_at"] = now
		}
		if result.StampCompleted && deal.CompletedAt == nil {
			updates["completed_at"] = now
		}

		cas := tx.Model(&models.Deal{}).
			Where("id = ? AND current_stage = ? AND status = ? AND stage_metadata = CAST(? AS JSON)",
				deal.ID, deal.CurrentStage, deal.Status, string(deal.StageMetadata)).
			Updates(updates)
		if cas.Error != nil {
			return cas.Error
		}
		if cas.RowsAffected == 0 {
			return ErrConcurrentModification
		}

		if err := r.recordTimeline(tx, &deal, deal.CurrentStage, result.Stage, deal.Status, result.Status, actorID, patch, notes); err != nil {
			// a failed log write aborts the stage change with it
			return err
		}

		if err := tx.First(&updated, deal.ID).Error; err != nil {
			return err
		}

		event = dealevents.Event{
			DealID:    deal.ID,
			DealUUID:  deal.UUID,
			OldStage:  deal.CurrentStage,
			NewStage:  result.Stage,
			OldStatus: deal.Status,
			NewStatus: result.Status,
			ActorID:   actorID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// published only after the transaction committed
	r.events.Publish(event)
	return &updated, nil
}

// Terminate ends a deal. The terminal status depends on how far the
// work got: cancelled (or rejected at offer) before production, dispute
// afterwards.
func (r *dealRepository) Terminate(dealID, actorID uint, reason string) (*models.Deal, error) {
	var (
		updated models.Deal
		event   dealevents.Event
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var deal models.Deal
		if err := tx.First(&deal, dealID).Error; err != nil {
			return err
		}

		snap, err := deal.Snapshot()
		if err != nil {
			return err
		}

		result, err := dealflow.Terminate(snap, actorID, reason)
		if err != nil {
			return err
		}

		cas := tx.Model(&models.Deal{}).
			Where("id = ? AND current_stage = ? AND status = ?", deal.ID, deal.CurrentStage, deal.Status).
			Updates(map[string]interface{}{
				"status":              result.Status,
				"cancellation_reason": result.Reason,
				"cancelled_by":        result.CancelledBy,
			})
		if cas.Error != nil {
			return cas.Error
		}
		if cas.RowsAffected == 0 {
			return ErrConcurrentModification
		}

		if err := r.recordTimeline(tx, &deal, deal.CurrentStage, deal.CurrentStage, deal.Status, result.Status, actorID, nil, reason); err != nil {
			return err
		}

		if err := tx.First(&updated, deal.ID).Error; err != nil {
			return err
		}

		event = dealevents.Event{
			DealID:    deal.ID,
			DealUUID:  deal.UUID,
			OldStage:  deal.CurrentStage,
			NewStage:  deal.CurrentStage,
			OldStatus: deal.Status,
			NewStatus: result.Status,
			ActorID:   actorID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.events.Publish(event)
	return &updated, nil
}

// recordTimeline appends one immutable audit entry inside the caller's
// transaction. There is no update or delete path for timeline entries
// anywhere in the codebase.
func (r *dealRepository) recordTimeline(tx *gorm.DB, deal *models.Deal, oldStage, newStage dealflow.Stage, oldStatus, newStatus dealflow.Status, actorID uint, patch map[string]interface{}, notes string) error {
	patchJSON, err := models.MapToJSON(patch)
	if err != nil {
		return err
	}
	entry := models.DealTimelineLog{
		DealID:    deal.ID,
		OldStage:  oldStage,
		NewStage:  newStage,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: actorID,
		Metadata:  patchJSON,
		Notes:     notes,
	}
	return tx.Create(&entry).Error
}

// TimelineFor retrieves the audit trail of a deal in chronological order
func (r *dealRepository) TimelineFor(dealID uint) ([]models.DealTimelineLog, error) {
	var entries []models.DealTimelineLog
	err := r.db.Where("deal_id = ?", dealID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}
