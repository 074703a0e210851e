package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

type createDealRequest struct {
	CreatorID   uint     `json:"creator_id"`
	CampaignID  *uint    `json:"campaign_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
}

type transitionRequest struct {
	TargetStage string                 `json:"target_stage"`
	Metadata    map[string]interface{} `json:"metadata"`
	Notes       string                 `json:"notes"`
}

type terminateRequest struct {
	Reason string `json:"reason"`
}

// HandleCreateDeal opens a deal directly, without going through a
// proposal. The deal starts at offer/active with the brand as sender.
func HandleCreateDeal(c *fiber.Ctx) error {
	var req createDealRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	creator, err := userRepo.GetByID(req.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Creator not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load creator")
	}
	if !creator.IsCreator() {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Deals can only be offered to creator accounts")
	}

	deal := &models.Deal{
		BrandID:     usercontext.GetUserID(c),
		CreatorID:   req.CreatorID,
		CampaignID:  req.CampaignID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	}
	if err := deal.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	created, err := dealRepo.Create(repository.CreateDealInput{
		BrandID:     deal.BrandID,
		CreatorID:   deal.CreatorID,
		CampaignID:  deal.CampaignID,
		Title:       deal.Title,
		Description: deal.Description,
		Budget:      deal.Budget,
	})
	if err != nil {
		return dealError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleListDeals returns the deals the authenticated user is a party to
func HandleListDeals(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	deals, err := dealRepo.ListByUser(usercontext.GetUserID(c), offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load deals")
	}

	return c.JSON(fiber.Map{"deals": deals, "offset": offset, "limit": limit})
}

// HandleGetDeal returns a single deal by UUID, parties only
func HandleGetDeal(c *fiber.Ctx) error {
	deal, errResp := loadDealForParty(c)
	if deal == nil {
		return errResp
	}
	return c.JSON(deal)
}

// HandleGetDealTimeline returns the audit trail of a deal, oldest first
func HandleGetDealTimeline(c *fiber.Ctx) error {
	deal, errResp := loadDealForParty(c)
	if deal == nil {
		return errResp
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	entries, err := dealRepo.TimelineFor(deal.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load timeline")
	}

	return c.JSON(fiber.Map{"timeline": entries})
}

// HandleDealTransition applies a stage change requested by a party. All
// protocol enforcement lives in the transition engine; this handler
// only translates the outcome to HTTP.
func HandleDealTransition(c *fiber.Ctx) error {
	deal, errResp := loadDealForParty(c)
	if deal == nil {
		return errResp
	}

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	target := dealflow.Stage(req.TargetStage)
	if !target.Valid() {
		return jsonError(c, fiber.StatusBadRequest, "invalid_stage_transition", "Unknown target stage")
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	updated, err := dealRepo.ApplyTransition(deal.ID, usercontext.GetUserID(c), target, req.Metadata, req.Notes)
	if err != nil {
		return dealError(c, err)
	}

	return c.JSON(updated)
}

// HandleTerminateDeal ends a deal on behalf of a party. Whether that
// records a cancellation or a dispute is the engine's call.
func HandleTerminateDeal(c *fiber.Ctx) error {
	deal, errResp := loadDealForParty(c)
	if deal == nil {
		return errResp
	}

	var req terminateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if req.Reason == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "A termination reason is required")
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	updated, err := dealRepo.Terminate(deal.ID, usercontext.GetUserID(c), req.Reason)
	if err != nil {
		return dealError(c, err)
	}

	return c.JSON(updated)
}

// loadDealForParty fetches the deal from the route UUID and ensures the
// authenticated user is one of its parties. Returns (nil, response) on
// failure.
func loadDealForParty(c *fiber.Ctx) (*models.Deal, error) {
	uuid := c.Params("uuid")
	if uuid == "" {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Deal UUID missing")
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	deal, err := dealRepo.GetByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Deal not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load deal")
	}

	if !deal.IsParty(usercontext.GetUserID(c)) {
		return nil, jsonError(c, fiber.StatusForbidden, "forbidden", "You are not a party to this deal")
	}

	return deal, nil
}
