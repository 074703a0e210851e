package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/database"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

// HandleGetProfile returns the role-specific profile for the authenticated user
func HandleGetProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	db := database.GetDB()

	switch userCtx.Role {
	case models.ROLE_BRAND:
		profile, err := models.GetOrCreateBrandProfile(db, userCtx.UserID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load profile")
		}
		return c.JSON(profile)
	case models.ROLE_CREATOR:
		profile, err := models.GetOrCreateCreatorProfile(db, userCtx.UserID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load profile")
		}
		return c.JSON(profile)
	default:
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "No profile for this account type")
	}
}

type brandProfileRequest struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	About       string `json:"about"`
}

type creatorProfileRequest struct {
	DisplayName   string       `json:"display_name"`
	Niche         string       `json:"niche"`
	FollowerCount int64        `json:"follower_count"`
	Platforms     *models.JSON `json:"platforms"`
	RateCard      *models.JSON `json:"rate_card"`
	About         string       `json:"about"`
}

// HandleUpdateProfile updates the role-specific profile for the authenticated user
func HandleUpdateProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	db := database.GetDB()

	switch userCtx.Role {
	case models.ROLE_BRAND:
		var req brandProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
		}
		profile, err := models.GetOrCreateBrandProfile(db, userCtx.UserID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load profile")
		}
		profile.CompanyName = req.CompanyName
		profile.Website = req.Website
		profile.Industry = req.Industry
		profile.About = req.About
		if err := db.Save(profile).Error; err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save profile")
		}
		return c.JSON(profile)
	case models.ROLE_CREATOR:
		var req creatorProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
		}
		profile, err := models.GetOrCreateCreatorProfile(db, userCtx.UserID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load profile")
		}
		profile.DisplayName = req.DisplayName
		profile.Niche = req.Niche
		profile.FollowerCount = req.FollowerCount
		if req.Platforms != nil {
			profile.Platforms = req.Platforms
		}
		if req.RateCard != nil {
			profile.RateCard = req.RateCard
		}
		profile.About = req.About
		if err := db.Save(profile).Error; err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save profile")
		}
		return c.JSON(profile)
	default:
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "No profile for this account type")
	}
}
