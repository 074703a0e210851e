// Package dealevents fans transition events out to interested
// collaborators. Dispatch is synchronous and in-process; delivery to
// external channels is the subscriber's problem, the engine only emits.
package dealevents

import (
	"log"
	"sync"

	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

// Event describes one applied deal transition or termination.
type Event struct {
	DealID    uint
	DealUUID  string
	OldStage  dealflow.Stage
	NewStage  dealflow.Stage
	OldStatus dealflow.Status
	NewStatus dealflow.Status
	ActorID   uint
}

// Terminated reports whether the event records a status termination
// rather than a stage advance.
func (e Event) Terminated() bool {
	return e.NewStatus.Terminal() && e.NewStatus != dealflow.StatusCompleted
}

// Subscriber receives events after the transition has been committed.
// A subscriber must not fail the transition; errors are logged and
// swallowed.
type Subscriber interface {
	HandleDealEvent(e Event)
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc func(e Event)

func (f SubscriberFunc) HandleDealEvent(e Event) { f(e) }

// Dispatcher fans events out to registered subscribers.
type Dispatcher struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a subscriber for all future events.
func (d *Dispatcher) Subscribe(s Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, s)
}

// Publish delivers the event to every subscriber in registration order.
func (d *Dispatcher) Publish(e Event) {
	d.mu.RLock()
	subs := make([]Subscriber, len(d.subs))
	copy(subs, d.subs)
	d.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("deal event subscriber panicked: %v", r)
				}
			}()
			s.HandleDealEvent(e)
		}()
	}
}

// Global dispatcher wired at boot, mirroring the repository factory.
var (
	globalDispatcher *Dispatcher
	dispatcherOnce   sync.Once
)

// GetDispatcher returns the process-wide dispatcher instance.
func GetDispatcher() *Dispatcher {
	dispatcherOnce.Do(func() {
		globalDispatcher = NewDispatcher()
	})
	return globalDispatcher
}
