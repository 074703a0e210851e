package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// jsonError writes the shared error response shape
func jsonError(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// statusForDealError maps a deal workflow error to its HTTP status and
// error code: 400 for validation, 403 for an unauthorized actor, 404
// for missing records, 409 for duplicates and lost races, 500 for
// storage failures.
func statusForDealError(err error) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "not_found"
	case errors.Is(err, dealflow.ErrUnauthorizedTransition):
		return fiber.StatusForbidden, "unauthorized_transition"
	case errors.Is(err, dealflow.ErrInvalidStageTransition):
		return fiber.StatusBadRequest, "invalid_stage_transition"
	case errors.Is(err, dealflow.ErrSignaturesMissing):
		return fiber.StatusBadRequest, "signatures_missing"
	case errors.Is(err, dealflow.ErrDealNotActive):
		return fiber.StatusBadRequest, "deal_not_active"
	case errors.Is(err, repository.ErrDuplicateDeal):
		return fiber.StatusConflict, "duplicate_deal"
	case errors.Is(err, repository.ErrConcurrentModification):
		return fiber.StatusConflict, "concurrent_modification"
	default:
		return fiber.StatusInternalServerError, "internal_server_error"
	}
}

// dealError writes a deal workflow error using the shared mapping. The
// original message is surfaced for everything except storage failures.
func dealError(c *fiber.Ctx, err error) error {
	status, code := statusForDealError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Something went wrong"
	}
	if status == fiber.StatusNotFound {
		message = "Deal not found"
	}
	return jsonError(c, status, code, message)
}

// parsePagination reads offset/limit query parameters with sane bounds
func parsePagination(c *fiber.Ctx) (int, int) {
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := c.QueryInt("limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}
	return offset, limit
}

// formatTimePtr renders an optional timestamp as RFC3339 UTC, or nil
func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
