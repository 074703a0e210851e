package dealflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	brandID    uint = 1
	creatorID  uint = 2
	strangerID uint = 99
)

func activeDeal(stage Stage, meta map[string]interface{}) Snapshot {
	return Snapshot{
		BrandID:   brandID,
		CreatorID: creatorID,
		Stage:     stage,
		Status:    StatusActive,
		Metadata:  meta,
	}
}

func TestTransitionTable(t *testing.T) {
	t.Parallel()

	signed := map[string]interface{}{
		MetaBrandSigned:   true,
		MetaCreatorSigned: true,
	}

	tests := []struct {
		name    string
		from    Stage
		meta    map[string]interface{}
		actor   uint
		target  Stage
		patch   map[string]interface{}
		wantErr error
	}{
		{name: "creator accepts offer", from: StageOffer, actor: creatorID, target: StageSigning},
		{name: "brand cannot accept its own offer", from: StageOffer, actor: brandID, target: StageSigning, wantErr: ErrUnauthorizedTransition},
		{name: "offer cannot jump to production", from: StageOffer, actor: creatorID, target: StageProduction, wantErr: ErrInvalidStageTransition},

		{name: "brand records signature", from: StageSigning, actor: brandID, target: StageSigning, patch: map[string]interface{}{MetaBrandSigned: true}},
		{name: "creator records signature", from: StageSigning, actor: creatorID, target: StageSigning, patch: map[string]interface{}{MetaCreatorSigned: true}},
		{name: "signing advances once both signed", from: StageSigning, meta: signed, actor: creatorID, target: StageLogistics},
		{name: "signing advance blocked with one signature", from: StageSigning, meta: map[string]interface{}{MetaBrandSigned: true}, actor: creatorID, target: StageLogistics, wantErr: ErrSignaturesMissing},
		{name: "second signature may arrive with the advancing patch", from: StageSigning, meta: map[string]interface{}{MetaBrandSigned: true}, actor: creatorID, target: StageLogistics, patch: map[string]interface{}{MetaCreatorSigned: true}},

		{name: "brand adds tracking info", from: StageLogistics, actor: brandID, target: StageLogistics, patch: map[string]interface{}{MetaTrackingNumber: "UPS123"}},
		{name: "creator may not update tracking", from: StageLogistics, actor: creatorID, target: StageLogistics, wantErr: ErrUnauthorizedTransition},
		{name: "creator confirms receipt", from: StageLogistics, actor: creatorID, target: StageProduction},
		{name: "brand may not confirm receipt", from: StageLogistics, actor: brandID, target: StageProduction, wantErr: ErrUnauthorizedTransition},

		{name: "creator submits draft", from: StageProduction, actor: creatorID, target: StageReview},
		{name: "brand may not submit the draft", from: StageProduction, actor: brandID, target: StageReview, wantErr: ErrUnauthorizedTransition},

		{name: "brand rejects with feedback", from: StageReview, actor: brandID, target: StageProduction, patch: map[string]interface{}{MetaFeedback: "fix audio"}},
		{name: "creator may not reject its own draft", from: StageReview, actor: creatorID, target: StageProduction, wantErr: ErrUnauthorizedTransition},
		{name: "brand approves", from: StageReview, actor: brandID, target: StageApproved},
		{name: "creator may not approve", from: StageReview, actor: creatorID, target: StageApproved, wantErr: ErrUnauthorizedTransition},
		{name: "review cannot fall back to offer", from: StageReview, actor: brandID, target: StageOffer, wantErr: ErrInvalidStageTransition},

		{name: "brand releases payment", from: StageApproved, actor: brandID, target: StagePaymentRelease},
		{name: "creator confirms payment received", from: StagePaymentRelease, actor: creatorID, target: StageCompleted},
		{name: "brand may not self-complete", from: StagePaymentRelease, actor: brandID, target: StageCompleted, wantErr: ErrUnauthorizedTransition},

		{name: "stranger is rejected everywhere", from: StageLogistics, actor: strangerID, target: StageProduction, wantErr: ErrUnauthorizedTransition},
		{name: "unknown target stage", from: StageOffer, actor: creatorID, target: Stage("shipping"), wantErr: ErrInvalidStageTransition},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Transition(activeDeal(tc.from, tc.meta), tc.actor, tc.target, tc.patch)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, res.Stage)
		})
	}
}

func TestTransitionTerminalStatusIsFinal(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusCancelled, StatusRejected, StatusDispute, StatusCompleted} {
		snap := Snapshot{
			BrandID:   brandID,
			CreatorID: creatorID,
			Stage:     StageLogistics,
			Status:    status,
		}

		// identical calls must fail identically every time
		for i := 0; i < 2; i++ {
			res, err := Transition(snap, creatorID, StageProduction, nil)
			require.Error(t, err, "status %s", status)
			assert.ErrorIs(t, err, ErrDealNotActive)
			assert.Nil(t, res)
		}
	}
}

func TestTransitionMergesMetadata(t *testing.T) {
	t.Parallel()

	existing := map[string]interface{}{
		MetaContractURL: "https://contracts.example.com/42.pdf",
	}
	res, err := Transition(activeDeal(StageLogistics, existing), brandID, StageLogistics, map[string]interface{}{
		MetaTrackingNumber: "UPS123",
	})
	require.NoError(t, err)

	// patched key lands, unrelated key survives
	assert.Equal(t, "UPS123", res.Metadata[MetaTrackingNumber])
	assert.Equal(t, "https://contracts.example.com/42.pdf", res.Metadata[MetaContractURL])

	// input metadata is not mutated
	assert.NotContains(t, existing, MetaTrackingNumber)
}

func TestTransitionStampsAgreementOnLeavingSigning(t *testing.T) {
	t.Parallel()

	meta := map[string]interface{}{
		MetaBrandSigned:   true,
		MetaCreatorSigned: true,
	}
	res, err := Transition(activeDeal(StageSigning, meta), brandID, StageLogistics, nil)
	require.NoError(t, err)
	assert.True(t, res.StampAgreementSigned)
	assert.False(t, res.StampCompleted)

	// re-entrant signing update does not stamp
	res, err = Transition(activeDeal(StageSigning, nil), brandID, StageSigning, map[string]interface{}{MetaBrandSigned: true})
	require.NoError(t, err)
	assert.False(t, res.StampAgreementSigned)
}

func TestTransitionCompletionStampsAndCloses(t *testing.T) {
	t.Parallel()

	res, err := Transition(activeDeal(StagePaymentRelease, nil), creatorID, StageCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, StageCompleted, res.Stage)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.True(t, res.StampCompleted)
}

func TestRevisionLoopIsUnbounded(t *testing.T) {
	t.Parallel()

	snap := activeDeal(StageProduction, nil)
	for i := 0; i < 5; i++ {
		res, err := Transition(snap, creatorID, StageReview, nil)
		require.NoError(t, err)
		snap.Stage = res.Stage
		snap.Metadata = res.Metadata

		res, err = Transition(snap, brandID, StageProduction, map[string]interface{}{MetaFeedback: "another pass"})
		require.NoError(t, err)
		snap.Stage = res.Stage
		snap.Metadata = res.Metadata
	}
	assert.Equal(t, StageProduction, snap.Stage)
}

func TestTerminatePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage Stage
		actor uint
		want  Status
	}{
		{name: "brand cancels at offer", stage: StageOffer, actor: brandID, want: StatusCancelled},
		{name: "creator declining at offer records rejected", stage: StageOffer, actor: creatorID, want: StatusRejected},
		{name: "cancel during signing", stage: StageSigning, actor: creatorID, want: StatusCancelled},
		{name: "cancel during logistics", stage: StageLogistics, actor: brandID, want: StatusCancelled},
		{name: "production termination disputes", stage: StageProduction, actor: brandID, want: StatusDispute},
		{name: "review termination disputes", stage: StageReview, actor: creatorID, want: StatusDispute},
		{name: "approved termination disputes", stage: StageApproved, actor: brandID, want: StatusDispute},
		{name: "payment release termination disputes", stage: StagePaymentRelease, actor: brandID, want: StatusDispute},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Terminate(activeDeal(tc.stage, nil), tc.actor, "changed my mind")
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Status)
			assert.Equal(t, tc.actor, res.CancelledBy)
			assert.Equal(t, "changed my mind", res.Reason)
		})
	}
}

func TestTerminateRejectsNonParties(t *testing.T) {
	t.Parallel()

	res, err := Terminate(activeDeal(StageProduction, nil), strangerID, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorizedTransition)
	assert.Nil(t, res)
}

func TestTerminateIsNotRepeatable(t *testing.T) {
	t.Parallel()

	snap := activeDeal(StageSigning, nil)
	snap.Status = StatusCancelled

	res, err := Terminate(snap, brandID, "again")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDealNotActive)
	assert.Nil(t, res)
}

func TestStageOrderingHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, StageOffer.Before(StageSigning))
	assert.False(t, StageReview.Before(StageLogistics))

	assert.True(t, StageOffer.PreProduction())
	assert.True(t, StageSigning.PreProduction())
	assert.True(t, StageLogistics.PreProduction())
	assert.False(t, StageProduction.PreProduction())
	assert.False(t, StageReview.PreProduction())

	assert.False(t, Stage("shipping").Valid())
	for _, s := range Stages() {
		assert.True(t, s.Valid())
	}
}
