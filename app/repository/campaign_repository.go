package repository

import (
	"github.com/creatorconnect/backend/app/models"
	"gorm.io/gorm"
)

// campaignRepository implements the CampaignRepository interface
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository instance
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// Create creates a new campaign in the database
func (r *campaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by its ID
func (r *campaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByBrandID retrieves all campaigns owned by a brand
func (r *campaignRepository) GetByBrandID(brandID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// ListOpen retrieves a paginated list of campaigns accepting proposals
func (r *campaignRepository) ListOpen(offset, limit int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("status = ?", models.CAMPAIGN_OPEN).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&campaigns).Error
	return campaigns, err
}

// Update updates an existing campaign in the database
func (r *campaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Close marks a campaign as no longer accepting proposals
func (r *campaignRepository) Close(id uint) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		Update("status", models.CAMPAIGN_CLOSED).Error
}

// Delete soft deletes a campaign by its ID
func (r *campaignRepository) Delete(id uint) error {
	return r.db.Delete(&models.Campaign{}, id).Error
}
