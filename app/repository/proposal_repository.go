package repository

import (
	"github.com/creatorconnect/backend/app/models"
	"gorm.io/gorm"
)

// proposalRepository implements the ProposalRepository interface
type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository instance
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

// Create creates a new proposal in the database
func (r *proposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// GetByID retrieves a proposal by its ID
func (r *proposalRepository) GetByID(id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ListByBrand retrieves all proposals sent by a brand
func (r *proposalRepository) ListByBrand(brandID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

// ListByCreator retrieves all proposals addressed to a creator
func (r *proposalRepository) ListByCreator(creatorID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

// UpdateStatus moves a proposal to a new decision state
func (r *proposalRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Proposal{}).Where("id = ?", id).
		Update("status", status).Error
}
