package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

type campaignRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	BudgetMin    *float64 `json:"budget_min"`
	BudgetMax    *float64 `json:"budget_max"`
}

// HandleCreateCampaign creates a new campaign posting for the authenticated brand
func HandleCreateCampaign(c *fiber.Ctx) error {
	var req campaignRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	campaign := &models.Campaign{
		BrandID:      usercontext.GetUserID(c),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Status:       models.CAMPAIGN_OPEN,
	}
	if err := campaign.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetCampaignRepository()
	if err := repo.Create(campaign); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create campaign")
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// HandleListCampaigns returns open campaigns, paginated
func HandleListCampaigns(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	repo := repository.GetGlobalFactory().GetCampaignRepository()
	campaigns, err := repo.ListOpen(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campaigns")
	}

	return c.JSON(fiber.Map{"campaigns": campaigns, "offset": offset, "limit": limit})
}

// HandleGetCampaign returns a single campaign by ID
func HandleGetCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid campaign id")
	}

	repo := repository.GetGlobalFactory().GetCampaignRepository()
	campaign, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Campaign not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campaign")
	}

	return c.JSON(campaign)
}

// HandleCloseCampaign stops a campaign from accepting further proposals
func HandleCloseCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid campaign id")
	}

	repo := repository.GetGlobalFactory().GetCampaignRepository()
	campaign, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Campaign not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campaign")
	}

	if campaign.BrandID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Only the campaign owner may close it")
	}

	if err := repo.Close(campaign.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to close campaign")
	}

	campaign.Status = models.CAMPAIGN_CLOSED
	return c.JSON(campaign)
}
