// Package chatgate decides whether a sender may post into a
// conversation, based solely on the linked deal's current state. The
// decision is a pure function and is re-evaluated on every send; the
// deal status can change between messages, so callers must pass a
// freshly loaded deal and never cache the result.
package chatgate

import (
	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// Denial reasons surfaced verbatim to the client.
const (
	ReasonLockedUntilAccepted = "chat is locked until the proposal is accepted"
	ReasonDealChatDisabled    = "chat is disabled for this deal"
)

// Decision is the gate's verdict for a single send attempt.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny builds a negative decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanSend reports whether posting into the conversation is permitted.
// Participant membership is the messaging layer's concern, not the
// gate's. deal may be nil when the conversation has no deal link.
func CanSend(conv *models.Conversation, deal *models.Deal) Decision {
	if conv == nil || !conv.IsDealLinked() || deal == nil {
		// direct conversations are never gated
		return Allow
	}

	if deal.CurrentStage == dealflow.StageOffer && !deal.Status.Terminal() {
		return Deny(ReasonLockedUntilAccepted)
	}

	switch deal.Status {
	case dealflow.StatusCancelled, dealflow.StatusRejected:
		return Deny(ReasonDealChatDisabled)
	}

	return Allow
}
