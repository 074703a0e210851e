package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/database"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

type proposalRequest struct {
	CreatorID      uint     `json:"creator_id"`
	CampaignID     *uint    `json:"campaign_id"`
	Message        string   `json:"message"`
	ProposedBudget *float64 `json:"proposed_budget"`
}

// HandleCreateProposal lets a brand offer a collaboration to a creator
func HandleCreateProposal(c *fiber.Ctx) error {
	var req proposalRequest
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
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Proposals can only be sent to creator accounts")
	}

	if req.CampaignID != nil {
		campaignRepo := repository.GetGlobalFactory().GetCampaignRepository()
		campaign, err := campaignRepo.GetByID(*req.CampaignID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, fiber.StatusNotFound, "not_found", "Campaign not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campaign")
		}
		if campaign.BrandID != usercontext.GetUserID(c) {
			return jsonError(c, fiber.StatusForbidden, "forbidden", "Campaign belongs to another brand")
		}
		if !campaign.IsOpen() {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "Campaign is closed")
		}
	}

	proposal := &models.Proposal{
		CampaignID:     req.CampaignID,
		BrandID:        usercontext.GetUserID(c),
		CreatorID:      req.CreatorID,
		Message:        req.Message,
		ProposedBudget: req.ProposedBudget,
		Status:         models.PROPOSAL_PENDING,
	}
	if err := proposal.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetProposalRepository()
	if err := repo.Create(proposal); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create proposal")
	}

	content := fmt.Sprintf("You received a new collaboration proposal: %s", proposal.Message)
	_ = models.CreateNotification(database.GetDB(), proposal.CreatorID, models.NOTIFY_PROPOSAL, content, proposal.ID)

	return c.Status(fiber.StatusCreated).JSON(proposal)
}

// HandleListProposals returns the proposals visible to the authenticated user
func HandleListProposals(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repo := repository.GetGlobalFactory().GetProposalRepository()

	var (
		proposals []models.Proposal
		err       error
	)
	if userCtx.Role == models.ROLE_BRAND {
		proposals, err = repo.ListByBrand(userCtx.UserID)
	} else {
		proposals, err = repo.ListByCreator(userCtx.UserID)
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load proposals")
	}

	return c.JSON(fiber.Map{"proposals": proposals})
}

// HandleAcceptProposal lets the addressed creator accept a pending
// proposal. Acceptance opens the deal at offer/active; the creator's
// next move is the offer -> signing transition.
func HandleAcceptProposal(c *fiber.Ctx) error {
	proposal, errResp := loadProposalForDecision(c)
	if proposal == nil {
		return errResp
	}

	if proposal.CreatorID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Only the addressed creator may accept")
	}

	title := proposal.Message
	if proposal.CampaignID != nil {
		campaignRepo := repository.GetGlobalFactory().GetCampaignRepository()
		if campaign, err := campaignRepo.GetByID(*proposal.CampaignID); err == nil {
			title = campaign.Title
		}
	}
	if title == "" {
		title = "Sponsorship deal"
	}

	dealRepo := repository.GetGlobalFactory().GetDealRepository()
	deal, err := dealRepo.Create(repository.CreateDealInput{
		BrandID:     proposal.BrandID,
		CreatorID:   proposal.CreatorID,
		CampaignID:  proposal.CampaignID,
		Title:       title,
		Description: proposal.Message,
		Budget:      proposal.ProposedBudget,
	})
	if err != nil {
		return dealError(c, err)
	}

	repo := repository.GetGlobalFactory().GetProposalRepository()
	if err := repo.UpdateStatus(proposal.ID, models.PROPOSAL_ACCEPTED); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update proposal")
	}

	content := fmt.Sprintf("Your proposal was accepted, deal %q is ready", deal.Title)
	_ = models.CreateNotification(database.GetDB(), proposal.BrandID, models.NOTIFY_PROPOSAL, content, deal.ID)

	return c.Status(fiber.StatusCreated).JSON(deal)
}

// HandleDeclineProposal lets the addressed creator decline a pending proposal
func HandleDeclineProposal(c *fiber.Ctx) error {
	proposal, errResp := loadProposalForDecision(c)
	if proposal == nil {
		return errResp
	}

	if proposal.CreatorID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Only the addressed creator may decline")
	}

	repo := repository.GetGlobalFactory().GetProposalRepository()
	if err := repo.UpdateStatus(proposal.ID, models.PROPOSAL_DECLINED); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update proposal")
	}

	proposal.Status = models.PROPOSAL_DECLINED
	return c.JSON(proposal)
}

// HandleWithdrawProposal lets the sending brand withdraw a pending proposal
func HandleWithdrawProposal(c *fiber.Ctx) error {
	proposal, errResp := loadProposalForDecision(c)
	if proposal == nil {
		return errResp
	}

	if proposal.BrandID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Only the sending brand may withdraw")
	}

	repo := repository.GetGlobalFactory().GetProposalRepository()
	if err := repo.UpdateStatus(proposal.ID, models.PROPOSAL_WITHDRAWN); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update proposal")
	}

	proposal.Status = models.PROPOSAL_WITHDRAWN
	return c.JSON(proposal)
}

// loadProposalForDecision fetches the proposal from the route and
// ensures it is still pending. Returns (nil, response) on failure.
func loadProposalForDecision(c *fiber.Ctx) (*models.Proposal, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid proposal id")
	}

	repo := repository.GetGlobalFactory().GetProposalRepository()
	proposal, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Proposal not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load proposal")
	}

	if !proposal.IsPending() {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Proposal is no longer pending")
	}

	return proposal, nil
}
