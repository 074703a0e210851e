package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
)

// conversationRepository implements the ConversationRepository interface
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository instance
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// GetByID retrieves a conversation by its ID
func (r *conversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.First(&conv, id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetByUUID retrieves a conversation by its public UUID
func (r *conversationRepository) GetByUUID(uuid string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("uuid = ?", uuid).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetByDealID retrieves the conversation linked to a deal
func (r *conversationRepository) GetByDealID(dealID uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("deal_id = ?", dealID).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetOrCreateDirect returns the deal-free conversation between two
// users, creating it on first contact.
func (r *conversationRepository) GetOrCreateDirect(userA, userB uint) (*models.Conversation, error) {
	a, b := models.NormalizePair(userA, userB)

	var conv models.Conversation
	err := r.db.Where("user_a_id = ? AND user_b_id = ? AND deal_id IS NULL", a, b).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = models.Conversation{UserAID: a, UserBID: b}
	if err := r.db.Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// LinkDeal binds a deal to an existing conversation. The link is set at
// most once; a second attempt fails with ErrConversationDealLinked.
func (r *conversationRepository) LinkDeal(conversationID, dealID uint) error {
	result := r.db.Model(&models.Conversation{}).
		Where("id = ? AND deal_id IS NULL", conversationID).
		Update("deal_id", dealID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConversationDealLinked
	}
	return nil
}

// ListForUser retrieves all conversations the user participates in
func (r *conversationRepository) ListForUser(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}
