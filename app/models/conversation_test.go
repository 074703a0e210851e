package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePair(t *testing.T) {
	t.Parallel()

	a, b := NormalizePair(5, 3)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(5), b)

	a, b = NormalizePair(3, 5)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(5), b)
}

func TestConversationBeforeCreate(t *testing.T) {
	t.Parallel()

	conv := &Conversation{UserAID: 9, UserBID: 4}
	require.NoError(t, conv.BeforeCreate(nil))

	assert.NotEmpty(t, conv.UUID)
	assert.Equal(t, uint(4), conv.UserAID)
	assert.Equal(t, uint(9), conv.UserBID)
}

func TestConversationHasParticipant(t *testing.T) {
	t.Parallel()

	conv := &Conversation{UserAID: 4, UserBID: 9}
	assert.True(t, conv.HasParticipant(4))
	assert.True(t, conv.HasParticipant(9))
	assert.False(t, conv.HasParticipant(5))
}

func TestConversationIsDealLinked(t *testing.T) {
	t.Parallel()

	conv := &Conversation{UserAID: 4, UserBID: 9}
	assert.False(t, conv.IsDealLinked())

	dealID := uint(7)
	conv.DealID = &dealID
	assert.True(t, conv.IsDealLinked())
}
