package notifier

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/iulianpascalau/app-vitals-monitoring/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("notifier")

// attributesNotifier is a thread-safe broadcast channel for aggregated attributes. Every
// subscriber receives every event published after its subscription, there is no backlog or
// replay. Publishing never blocks: a subscriber that does not drain its channel in time
// loses events.
type attributesNotifier struct {
	mutSubscribers sync.RWMutex
	subscribers    map[uint64]*Subscription
	nextID         uint64
	bufferSize     int
	closed         bool
	numDropped     atomic.Uint64
}

// Subscription is one reader's view of the notifier output
type Subscription struct {
	out    chan common.AggregatedAttributes
	cancel func()
}

// Out returns the channel delivering the published attributes. It is closed when either the
// subscription or the notifier is closed.
func (subscription *Subscription) Out() <-chan common.AggregatedAttributes {
	return subscription.out
}

// Close unsubscribes and closes the output channel. Safe to call more than once.
func (subscription *Subscription) Close() {
	subscription.cancel()
}

// NewAttributesNotifier creates a new notifier. bufferSize is the per-subscriber channel
// capacity before events start being dropped for that subscriber.
func NewAttributesNotifier(bufferSize int) (*attributesNotifier, error) {
	if bufferSize < 1 {
		return nil, fmt.Errorf("invalid buffer size %d, should be at least 1", bufferSize)
	}

	return &attributesNotifier{
		subscribers: make(map[uint64]*Subscription),
		bufferSize:  bufferSize,
	}, nil
}

// Subscribe registers a new reader. Events published before this call are never delivered.
func (notifier *attributesNotifier) Subscribe() (*Subscription, error) {
	notifier.mutSubscribers.Lock()
	defer notifier.mutSubscribers.Unlock()

	if notifier.closed {
		return nil, errors.New("notifier is closed")
	}

	id := notifier.nextID
	notifier.nextID++

	subscription := &Subscription{
		out: make(chan common.AggregatedAttributes, notifier.bufferSize),
	}
	subscription.cancel = func() {
		notifier.removeSubscriber(id)
	}
	notifier.subscribers[id] = subscription

	return subscription, nil
}

func (notifier *attributesNotifier) removeSubscriber(id uint64) {
	notifier.mutSubscribers.Lock()
	defer notifier.mutSubscribers.Unlock()

	subscription, found := notifier.subscribers[id]
	if !found {
		return
	}

	delete(notifier.subscribers, id)
	close(subscription.out)
}

// Publish delivers the attributes to all current subscribers without blocking. Subscribers
// with a full buffer are skipped and the event is counted as dropped for them.
func (notifier *attributesNotifier) Publish(attributes common.AggregatedAttributes) {
	notifier.mutSubscribers.RLock()
	defer notifier.mutSubscribers.RUnlock()

	if notifier.closed {
		return
	}

	for _, subscription := range notifier.subscribers {
		select {
		case subscription.out <- attributes:
		default:
			dropped := notifier.numDropped.Add(1)
			log.Warn("slow subscriber, dropping attributes event", "total dropped", dropped)
		}
	}
}

// NumDroppedEvents returns how many events were dropped because of slow subscribers
func (notifier *attributesNotifier) NumDroppedEvents() uint64 {
	return notifier.numDropped.Load()
}

// Close closes all subscriptions. Further Publish calls are no-ops and further Subscribe
// calls error.
func (notifier *attributesNotifier) Close() error {
	notifier.mutSubscribers.Lock()
	defer notifier.mutSubscribers.Unlock()

	if notifier.closed {
		return nil
	}

	notifier.closed = true
	for id, subscription := range notifier.subscribers {
		delete(notifier.subscribers, id)
		close(subscription.out)
	}

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (notifier *attributesNotifier) IsInterfaceNil() bool {
	return notifier == nil
}
