// Package dealflow implements the deal lifecycle state machine: the
// ordered stages a sponsorship deal moves through, the turn-taking
// protocol deciding which party may push it forward, and the
// termination policy splitting cancellations from disputes. The
// package is pure; persistence lives in the repository layer.
package dealflow

import (
	"fmt"
)

// party identifies which side of the deal may take a transition.
type party int

const (
	partyBrand party = iota
	partyCreator
	partyEither
)

func (p party) String() string {
	switch p {
	case partyBrand:
		return "brand"
	case partyCreator:
		return "creator"
	default:
		return "either party"
	}
}

// Snapshot is the slice of deal state the engine validates against.
// Callers build it from the persisted record inside the same
// transaction that applies the result.
type Snapshot struct {
	BrandID   uint
	CreatorID uint
	Stage     Stage
	Status    Status
	Metadata  map[string]interface{}
}

// Result describes the state a validated transition produces. The
// caller persists it together with a timeline entry as one atomic unit.
type Result struct {
	Stage    Stage
	Status   Status
	Metadata map[string]interface{}

	// StampAgreementSigned is set on the transition that leaves signing
	// with both signature flags present; agreement_signed_at is written
	// exactly once.
	StampAgreementSigned bool

	// StampCompleted is set on the transition into completed;
	// completed_at is written exactly once.
	StampCompleted bool
}

// rule is one edge of the transition table.
type rule struct {
	to    Stage
	by    party
	guard func(merged map[string]interface{}) error
}

// transitions is the full table: the turn-taking protocol plus
// the single backward edge review -> production (the revision loop).
var transitions = map[Stage][]rule{
	StageOffer: {
		{to: StageSigning, by: partyCreator}, // creator accepts the offer
	},
	StageSigning: {
		{to: StageSigning, by: partyEither}, // signature collection, re-entrant
		{to: StageLogistics, by: partyEither, guard: requireSignatures},
	},
	StageLogistics: {
		{to: StageLogistics, by: partyBrand},    // brand adds tracking info
		{to: StageProduction, by: partyCreator}, // creator confirms receipt
	},
	StageProduction: {
		{to: StageReview, by: partyCreator}, // creator submits the draft
	},
	StageReview: {
		{to: StageProduction, by: partyBrand}, // brand rejects with feedback
		{to: StageApproved, by: partyBrand},   // brand approves
	},
	StageApproved: {
		{to: StagePaymentRelease, by: partyBrand},
	},
	StagePaymentRelease: {
		{to: StageCompleted, by: partyCreator}, // creator confirms payment received
	},
}

func requireSignatures(merged map[string]interface{}) error {
	if !SignaturesComplete(merged) {
		return ErrSignaturesMissing
	}
	return nil
}

// actorParty resolves the acting user to a side of the deal.
func (s Snapshot) actorParty(actorID uint) (party, bool) {
	switch actorID {
	case s.BrandID:
		return partyBrand, true
	case s.CreatorID:
		return partyCreator, true
	default:
		return 0, false
	}
}

// Transition validates a stage change request against the table and
// returns the resulting state. The metadata patch is shallow-merged
// into the snapshot's metadata; guards run against the merged view so
// a signature flag delivered with the request itself counts.
func Transition(s Snapshot, actorID uint, target Stage, patch map[string]interface{}) (*Result, error) {
	if s.Status.Terminal() {
		return nil, fmt.Errorf("%w: status is %s", ErrDealNotActive, s.Status)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidStageTransition, string(target))
	}

	actor, isParty := s.actorParty(actorID)
	if !isParty {
		return nil, fmt.Errorf("%w: user %d is not a party to this deal", ErrUnauthorizedTransition, actorID)
	}

	var edge *rule
	for i := range transitions[s.Stage] {
		if transitions[s.Stage][i].to == target {
			edge = &transitions[s.Stage][i]
			break
		}
	}
	if edge == nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStageTransition, s.Stage, target)
	}
	if edge.by != partyEither && edge.by != actor {
		return nil, fmt.Errorf("%w: %s -> %s may only be taken by the %s", ErrUnauthorizedTransition, s.Stage, target, edge.by)
	}

	merged := MergeMetadata(s.Metadata, patch)
	if edge.guard != nil {
		if err := edge.guard(merged); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Stage:    target,
		Status:   s.Status,
		Metadata: merged,
	}
	if s.Stage == StageSigning && target == StageLogistics {
		res.StampAgreementSigned = true
	}
	if target == StageCompleted {
		res.Status = StatusCompleted
		res.StampCompleted = true
	}
	return res, nil
}

// TerminationResult describes how a deal ends: cancelled outright,
// rejected at offer, or escalated to a dispute.
type TerminationResult struct {
	Status      Status
	Reason      string
	CancelledBy uint
}

// Terminate decides the terminal status for a deal. Pre-production
// stages cancel without penalty (a creator declining at offer records
// rejected); once work has been performed the deal goes to dispute for
// administrative resolution instead of unilateral cancellation.
func Terminate(s Snapshot, actorID uint, reason string) (*TerminationResult, error) {
	if s.Status.Terminal() {
		return nil, fmt.Errorf("%w: status is already %s", ErrDealNotActive, s.Status)
	}

	actor, isParty := s.actorParty(actorID)
	if !isParty {
		return nil, fmt.Errorf("%w: user %d is not a party to this deal", ErrUnauthorizedTransition, actorID)
	}

	status := StatusDispute
	if s.Stage.PreProduction() {
		status = StatusCancelled
		if s.Stage == StageOffer && actor == partyCreator {
			// declining the initial offer is a rejection, not a cancellation
			status = StatusRejected
		}
	}

	return &TerminationResult{
		Status:      status,
		Reason:      reason,
		CancelledBy: actorID,
	}, nil
}
