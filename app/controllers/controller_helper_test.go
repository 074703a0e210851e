package controllers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/repository"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

func TestStatusForDealError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, wantStatus: fiber.StatusNotFound, wantCode: "not_found"},
		{name: "unauthorized actor", err: dealflow.ErrUnauthorizedTransition, wantStatus: fiber.StatusForbidden, wantCode: "unauthorized_transition"},
		{name: "invalid transition", err: dealflow.ErrInvalidStageTransition, wantStatus: fiber.StatusBadRequest, wantCode: "invalid_stage_transition"},
		{name: "signatures missing", err: dealflow.ErrSignaturesMissing, wantStatus: fiber.StatusBadRequest, wantCode: "signatures_missing"},
		{name: "deal not active", err: dealflow.ErrDealNotActive, wantStatus: fiber.StatusBadRequest, wantCode: "deal_not_active"},
		{name: "duplicate deal", err: repository.ErrDuplicateDeal, wantStatus: fiber.StatusConflict, wantCode: "duplicate_deal"},
		{name: "lost update race", err: repository.ErrConcurrentModification, wantStatus: fiber.StatusConflict, wantCode: "concurrent_modification"},
		{name: "wrapped errors unwrap", err: fmt.Errorf("applying transition: %w", dealflow.ErrUnauthorizedTransition), wantStatus: fiber.StatusForbidden, wantCode: "unauthorized_transition"},
		{name: "anything else is internal", err: errors.New("dial tcp: connection refused"), wantStatus: fiber.StatusInternalServerError, wantCode: "internal_server_error"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, code := statusForDealError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestFormatTimePtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, formatTimePtr(nil))

	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2025, 3, 14, 10, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-14T09:30:00Z", formatTimePtr(&ts))
}
