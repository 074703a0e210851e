package dealevents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	var order []string
	d.Subscribe(SubscriberFunc(func(e Event) { order = append(order, "first") }))
	d.Subscribe(SubscriberFunc(func(e Event) { order = append(order, "second") }))

	d.Publish(Event{DealID: 1})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishSurvivesPanickingSubscriber(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	var delivered bool
	d.Subscribe(SubscriberFunc(func(e Event) { panic("boom") }))
	d.Subscribe(SubscriberFunc(func(e Event) { delivered = true }))

	d.Publish(Event{DealID: 1})
	assert.True(t, delivered, "panic in one subscriber must not starve the rest")
}

func TestPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	NewDispatcher().Publish(Event{DealID: 1})
}

func TestEventTerminated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status dealflow.Status
		want   bool
	}{
		{name: "stage advance", status: dealflow.StatusActive, want: false},
		{name: "cancellation", status: dealflow.StatusCancelled, want: true},
		{name: "rejection", status: dealflow.StatusRejected, want: true},
		{name: "dispute", status: dealflow.StatusDispute, want: true},
		{name: "normal completion is not a termination", status: dealflow.StatusCompleted, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := Event{NewStatus: tc.status}
			assert.Equal(t, tc.want, e.Terminated())
		})
	}
}

func TestGetDispatcherIsSingleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetDispatcher(), GetDispatcher())
}
