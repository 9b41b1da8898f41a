package feed

import (
	"container/list"
	"sync"

	"github.com/google/uuid"
)

// EventStore is a per-newsfeed bounded LIFO collection of events (most-recent
// first), capped both on the number of distinct newsfeeds it will track and
// on the number of events it keeps per newsfeed. Adapted from the teacher's
// pkg/events in-memory persistence store, generalized to the newsfeed/event
// FQID shape and the eviction-on-events-never-on-subscriptions split the
// spec requires.
type EventStore struct {
	mu                   sync.Mutex
	feeds                map[string]*list.List // newsfeed_id -> list of *Event, front = most recent
	maxNewsfeeds         int
	maxEventsPerNewsfeed int
}

// NewEventStore builds a store bounded by maxNewsfeeds distinct feeds and
// maxEventsPerNewsfeed entries per feed.
func NewEventStore(maxNewsfeeds, maxEventsPerNewsfeed int) *EventStore {
	return &EventStore{
		feeds:                make(map[string]*list.List),
		maxNewsfeeds:         maxNewsfeeds,
		maxEventsPerNewsfeed: maxEventsPerNewsfeed,
	}
}

// GetByNewsfeedID returns a point-in-time snapshot of a feed's events,
// most-recent first. Never mutated by the caller's later actions.
func (s *EventStore) GetByNewsfeedID(newsfeedID string) []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.feeds[newsfeedID]
	if !ok {
		return []*Event{}
	}

	events := make([]*Event, 0, feed.Len())
	for e := feed.Front(); e != nil; e = e.Next() {
		events = append(events, e.Value.(*Event))
	}
	return events
}

// GetByFQID returns the event matching the FQID, or ErrEventNotFound.
func (s *EventStore) GetByFQID(newsfeedID string, eventID uuid.UUID) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.feeds[newsfeedID]
	if !ok {
		return nil, ErrEventNotFound
	}

	for e := feed.Front(); e != nil; e = e.Next() {
		event := e.Value.(*Event)
		if event.ID == eventID {
			return event, nil
		}
	}
	return nil, ErrEventNotFound
}

// Add inserts an event at the head of its feed. If the feed is new and the
// store is already tracking maxNewsfeeds distinct feeds, fails with
// ErrNewsfeedLimitExceeded. If the feed is already at capacity, the oldest
// (tail) entry is evicted silently before the new one is inserted — eviction
// here is a capacity wall, not an error condition, and it never touches
// subscriptions.
func (s *EventStore) Add(event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, exists := s.feeds[event.NewsfeedID]
	if !exists {
		if len(s.feeds) >= s.maxNewsfeeds {
			return ErrNewsfeedLimitExceeded
		}
		feed = list.New()
		s.feeds[event.NewsfeedID] = feed
	}

	if feed.Len() >= s.maxEventsPerNewsfeed {
		feed.Remove(feed.Back())
	}
	feed.PushFront(event)
	return nil
}

// Stats reports the number of distinct newsfeeds tracked and the total
// number of events held across all of them, for periodic telemetry.
func (s *EventStore) Stats() (newsfeeds int, events int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newsfeeds = len(s.feeds)
	for _, feed := range s.feeds {
		events += feed.Len()
	}
	return newsfeeds, events
}

// DeleteByFQID removes the matching event if present. Idempotent: deleting an
// absent event is a no-op, not an error.
func (s *EventStore) DeleteByFQID(fqid EventFQID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.feeds[fqid.NewsfeedID]
	if !ok {
		return
	}

	for e := feed.Front(); e != nil; e = e.Next() {
		if e.Value.(*Event).ID == fqid.EventID {
			feed.Remove(e)
			return
		}
	}
}
