package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

func TestDealBeforeCreateDefaults(t *testing.T) {
	t.Parallel()

	deal := &Deal{BrandID: 1, CreatorID: 2, Title: "Spring launch"}
	require.NoError(t, deal.BeforeCreate(nil))

	assert.NotEmpty(t, deal.UUID)
	assert.Equal(t, dealflow.StageOffer, deal.CurrentStage)
	assert.Equal(t, dealflow.StatusActive, deal.Status)
	assert.Equal(t, JSON("{}"), deal.StageMetadata)
}

func TestDealBeforeCreateKeepsExistingValues(t *testing.T) {
	t.Parallel()

	deal := &Deal{
		UUID:          "11111111-2222-3333-4444-555555555555",
		BrandID:       1,
		CreatorID:     2,
		Title:         "Spring launch",
		CurrentStage:  dealflow.StageSigning,
		Status:        dealflow.StatusActive,
		StageMetadata: JSON(`{"brand_signed":true}`),
	}
	require.NoError(t, deal.BeforeCreate(nil))

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", deal.UUID)
	assert.Equal(t, dealflow.StageSigning, deal.CurrentStage)
	assert.Equal(t, JSON(`{"brand_signed":true}`), deal.StageMetadata)
}

func TestDealParties(t *testing.T) {
	t.Parallel()

	deal := &Deal{BrandID: 10, CreatorID: 20}

	assert.True(t, deal.IsParty(10))
	assert.True(t, deal.IsParty(20))
	assert.False(t, deal.IsParty(30))

	assert.Equal(t, uint(20), deal.Counterparty(10))
	assert.Equal(t, uint(10), deal.Counterparty(20))
}

func TestDealIsActive(t *testing.T) {
	t.Parallel()

	deal := &Deal{Status: dealflow.StatusActive}
	assert.True(t, deal.IsActive())

	for _, status := range []dealflow.Status{
		dealflow.StatusCancelled,
		dealflow.StatusRejected,
		dealflow.StatusDispute,
		dealflow.StatusCompleted,
	} {
		deal.Status = status
		assert.False(t, deal.IsActive(), "status %s", status)
	}
}

func TestDealSnapshot(t *testing.T) {
	t.Parallel()

	deal := &Deal{
		BrandID:       10,
		CreatorID:     20,
		CurrentStage:  dealflow.StageLogistics,
		Status:        dealflow.StatusActive,
		StageMetadata: JSON(`{"tracking_number":"UPS123","brand_signed":true}`),
	}

	snap, err := deal.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, uint(10), snap.BrandID)
	assert.Equal(t, uint(20), snap.CreatorID)
	assert.Equal(t, dealflow.StageLogistics, snap.Stage)
	assert.Equal(t, "UPS123", snap.Metadata[dealflow.MetaTrackingNumber])
	assert.Equal(t, true, snap.Metadata[dealflow.MetaBrandSigned])
}

func TestDealSnapshotRejectsBrokenMetadata(t *testing.T) {
	t.Parallel()

	deal := &Deal{StageMetadata: JSON(`{broken`)}
	_, err := deal.Snapshot()
	assert.Error(t, err)
}

func TestDealValidate(t *testing.T) {
	t.Parallel()

	deal := &Deal{BrandID: 1, CreatorID: 2, Title: "ab"}
	assert.Error(t, deal.Validate(), "title below minimum length")

	deal.Title = "Spring launch"
	assert.NoError(t, deal.Validate())
}
