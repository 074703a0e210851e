package chatgate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

func dealConversation(dealID uint) *models.Conversation {
	return &models.Conversation{ID: 1, UserAID: 1, UserBID: 2, DealID: &dealID}
}

func TestCanSendDirectConversation(t *testing.T) {
	t.Parallel()

	conv := &models.Conversation{ID: 1, UserAID: 1, UserBID: 2}
	assert.Equal(t, Allow, CanSend(conv, nil))
}

func TestCanSendNilInputs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow, CanSend(nil, nil))
	assert.Equal(t, Allow, CanSend(dealConversation(7), nil))
}

func TestCanSendDealLifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stage      dealflow.Stage
		status     dealflow.Status
		allowed    bool
		wantReason string
	}{
		{name: "locked at offer", stage: dealflow.StageOffer, status: dealflow.StatusActive, allowed: false, wantReason: ReasonLockedUntilAccepted},
		{name: "opens at signing", stage: dealflow.StageSigning, status: dealflow.StatusActive, allowed: true},
		{name: "open during logistics", stage: dealflow.StageLogistics, status: dealflow.StatusActive, allowed: true},
		{name: "open during production", stage: dealflow.StageProduction, status: dealflow.StatusActive, allowed: true},
		{name: "open during review", stage: dealflow.StageReview, status: dealflow.StatusActive, allowed: true},
		{name: "cancelled deal disables chat", stage: dealflow.StageSigning, status: dealflow.StatusCancelled, allowed: false, wantReason: ReasonDealChatDisabled},
		{name: "rejected offer disables chat", stage: dealflow.StageOffer, status: dealflow.StatusRejected, allowed: false, wantReason: ReasonDealChatDisabled},
		{name: "dispute keeps chat open", stage: dealflow.StageProduction, status: dealflow.StatusDispute, allowed: true},
		{name: "completed deal keeps chat open", stage: dealflow.StageCompleted, status: dealflow.StatusCompleted, allowed: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			deal := &models.Deal{ID: 7, BrandID: 1, CreatorID: 2, CurrentStage: tc.stage, Status: tc.status}
			got := CanSend(dealConversation(deal.ID), deal)
			assert.Equal(t, tc.allowed, got.Allowed)
			assert.Equal(t, tc.wantReason, got.Reason)
		})
	}
}
