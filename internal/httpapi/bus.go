package httpapi

import (
	"sync"
	"time"
)

const (
	EventUsage  = "usage"
	EventUpdate = "update"
)

type busEvent struct {
	Type string    `json:"type"`
	Time time.Time `json:"time"`
}

type subscriber struct {
	ch        chan busEvent
	accountID string
}

type eventBus struct {
	mu   sync.Mutex
	subs map[chan busEvent]subscriber
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[chan busEvent]subscriber)}
}

func (b *eventBus) Subscribe(accountID string) chan busEvent {
	ch := make(chan busEvent, 32)
	b.mu.Lock()
	b.subs[ch] = subscriber{ch: ch, accountID: accountID}
	b.mu.Unlock()
	return ch
}

func (b *eventBus) Unsubscribe(ch chan busEvent) {
	if ch == nil {
		return
	}
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

func (b *eventBus) Publish(typ string, accountID string) {
	if typ == "" {
		typ = EventUpdate
	}
	ev := busEvent{Type: typ, Time: time.Now().UTC()}

	b.mu.Lock()
	for _, sub := range b.subs {
		// Deliver when the event is global, the subscriber listens to
		// everything, or the account matches.
		if accountID == "" || sub.accountID == "" || sub.accountID == accountID {
			select {
			case sub.ch <- ev:
			default:
				// drop if subscriber is slow
			}
		}
	}
	b.mu.Unlock()
}
