package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/chatgate"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

type startConversationRequest struct {
	UserID uint `json:"user_id"`
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

// HandleListConversations returns all conversations of the authenticated user
func HandleListConversations(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetConversationRepository()
	convs, err := repo.ListForUser(usercontext.GetUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load conversations")
	}

	return c.JSON(fiber.Map{"conversations": convs})
}

// HandleStartConversation opens (or returns) the direct conversation
// with another user. Deal conversations are created with their deal and
// cannot be started here.
func HandleStartConversation(c *fiber.Ctx) error {
	var req startConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	userID := usercontext.GetUserID(c)
	if req.UserID == 0 || req.UserID == userID {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid conversation partner")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	repo := repository.GetGlobalFactory().GetConversationRepository()
	conv, err := repo.GetOrCreateDirect(userID, req.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to open conversation")
	}

	return c.Status(fiber.StatusCreated).JSON(conv)
}

// HandleListMessages returns a conversation's message history and marks
// the reader's side as read
func HandleListMessages(c *fiber.Ctx) error {
	conv, errResp := loadConversationForParticipant(c)
	if conv == nil {
		return errResp
	}
	offset, limit := parsePagination(c)

	msgRepo := repository.GetGlobalFactory().GetMessageRepository()
	messages, err := msgRepo.ListByConversation(conv.ID, offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load messages")
	}

	_ = msgRepo.MarkRead(conv.ID, usercontext.GetUserID(c))

	return c.JSON(fiber.Map{"messages": messages, "offset": offset, "limit": limit})
}

// HandleSendMessage posts into a conversation. For deal-linked
// conversations the gate is consulted with a freshly loaded deal on
// every send; its verdict is never cached.
func HandleSendMessage(c *fiber.Ctx) error {
	conv, errResp := loadConversationForParticipant(c)
	if conv == nil {
		return errResp
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	var deal *models.Deal
	if conv.IsDealLinked() {
		dealRepo := repository.GetGlobalFactory().GetDealRepository()
		var err error
		deal, err = dealRepo.GetByID(*conv.DealID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load deal")
		}
	}

	if decision := chatgate.CanSend(conv, deal); !decision.Allowed {
		return jsonError(c, fiber.StatusForbidden, "chat_locked", decision.Reason)
	}

	message := &models.Message{
		ConversationID: conv.ID,
		SenderID:       usercontext.GetUserID(c),
		Body:           req.Body,
	}
	if err := message.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	msgRepo := repository.GetGlobalFactory().GetMessageRepository()
	if err := msgRepo.Create(message); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// loadConversationForParticipant fetches the conversation from the
// route UUID and ensures the authenticated user participates in it.
func loadConversationForParticipant(c *fiber.Ctx) (*models.Conversation, error) {
	uuid := c.Params("uuid")
	if uuid == "" {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Conversation UUID missing")
	}

	repo := repository.GetGlobalFactory().GetConversationRepository()
	conv, err := repo.GetByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Conversation not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load conversation")
	}

	if !conv.HasParticipant(usercontext.GetUserID(c)) {
		return nil, jsonError(c, fiber.StatusForbidden, "forbidden", "You are not part of this conversation")
	}

	return conv, nil
}
