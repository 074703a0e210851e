package repository

import (
	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// CampaignRepository defines the interface for campaign-related database operations
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	GetByID(id uint) (*models.Campaign, error)
	GetByBrandID(brandID uint) ([]models.Campaign, error)
	ListOpen(offset, limit int) ([]models.Campaign, error)
	Update(campaign *models.Campaign) error
	Close(id uint) error
	Delete(id uint) error
}

// ProposalRepository defines the interface for proposal-related database operations
type ProposalRepository interface {
	Create(proposal *models.Proposal) error
	GetByID(id uint) (*models.Proposal, error)
	ListByBrand(brandID uint) ([]models.Proposal, error)
	ListByCreator(creatorID uint) ([]models.Proposal, error)
	UpdateStatus(id uint, status string) error
}

// DealRepository is the durable deal store. Every mutation runs through
// the transition engine and is applied together with its timeline entry
// as one atomic unit.
type DealRepository interface {
	Create(input CreateDealInput) (*models.Deal, error)
	GetByID(id uint) (*models.Deal, error)
	GetByUUID(uuid string) (*models.Deal, error)
	ListByUser(userID uint, offset, limit int) ([]models.Deal, error)
	ApplyTransition(dealID, actorID uint, target dealflow.Stage, patch map[string]interface{}, notes string) (*models.Deal, error)
	Terminate(dealID, actorID uint, reason string) (*models.Deal, error)
	TimelineFor(dealID uint) ([]models.DealTimelineLog, error)
}

// CreateDealInput carries the immutable facts a new deal starts from.
type CreateDealInput struct {
	BrandID     uint
	CreatorID   uint
	CampaignID  *uint
	Title       string
	Description string
	Budget      *float64
}

// ConversationRepository defines the interface for conversation-related database operations
type ConversationRepository interface {
	GetByID(id uint) (*models.Conversation, error)
	GetByUUID(uuid string) (*models.Conversation, error)
	GetByDealID(dealID uint) (*models.Conversation, error)
	GetOrCreateDirect(userA, userB uint) (*models.Conversation, error)
	LinkDeal(conversationID, dealID uint) error
	ListForUser(userID uint) ([]models.Conversation, error)
}

// MessageRepository defines the interface for message-related database operations
type MessageRepository interface {
	Create(message *models.Message) error
	ListByConversation(conversationID uint, offset, limit int) ([]models.Message, error)
	MarkRead(conversationID, readerID uint) error
}
