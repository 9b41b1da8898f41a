package feed

import (
	"container/list"
	"sync"
)

// SubscriptionStore is a dual-indexed, bounded collection of subscriptions:
// one index keyed by the subscribing newsfeed (outgoing), one keyed by the
// target newsfeed (incoming). Both indexes are updated atomically on every
// write. Unlike EventStore, a full feed is a hard failure here, never an
// eviction — a dropped subscription would silently break fan-out for every
// future event on that feed, which the teacher's eviction-on-overflow policy
// for events must not be allowed to do here.
type SubscriptionStore struct {
	mu                         sync.Mutex
	subscriptions              map[string]*list.List // newsfeed_id -> list of *Subscription, front = most recent
	subscribers                map[string]*list.List // to_newsfeed_id -> list of *Subscription, front = most recent
	maxNewsfeeds               int
	maxSubscriptionsPerNewsfeed int
}

// NewSubscriptionStore builds a store bounded by maxNewsfeeds distinct
// subscribing feeds and maxSubscriptionsPerNewsfeed outgoing subscriptions
// per feed.
func NewSubscriptionStore(maxNewsfeeds, maxSubscriptionsPerNewsfeed int) *SubscriptionStore {
	return &SubscriptionStore{
		subscriptions:               make(map[string]*list.List),
		subscribers:                 make(map[string]*list.List),
		maxNewsfeeds:                maxNewsfeeds,
		maxSubscriptionsPerNewsfeed: maxSubscriptionsPerNewsfeed,
	}
}

// GetByNewsfeedID returns the subscriptions a newsfeed has made to others,
// most-recent first.
func (s *SubscriptionStore) GetByNewsfeedID(newsfeedID string) []*Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.subscriptions[newsfeedID])
}

// GetByToNewsfeedID returns the subscriptions other newsfeeds have made to
// this one, most-recent first. This is the list the processor fans out
// against on every new event.
func (s *SubscriptionStore) GetByToNewsfeedID(toNewsfeedID string) []*Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.subscribers[toNewsfeedID])
}

func snapshot(l *list.List) []*Subscription {
	if l == nil {
		return []*Subscription{}
	}
	out := make([]*Subscription, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*Subscription))
	}
	return out
}

// GetByFQID returns the subscription matching the FQID, or ErrSubscriptionNotFound.
func (s *SubscriptionStore) GetByFQID(fqid SubscriptionFQID) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.subscriptions[fqid.NewsfeedID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	for e := feed.Front(); e != nil; e = e.Next() {
		sub := e.Value.(*Subscription)
		if sub.ID == fqid.SubscriptionID {
			return sub, nil
		}
	}
	return nil, ErrSubscriptionNotFound
}

// GetBetween returns the subscription from newsfeedID to toNewsfeedID, if
// any, or ErrSubscriptionBetweenNotFound. Used to reject duplicate
// subscriptions before they are created.
func (s *SubscriptionStore) GetBetween(newsfeedID, toNewsfeedID string) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.subscriptions[newsfeedID]
	if !ok {
		return nil, ErrSubscriptionBetweenNotFound
	}
	for e := feed.Front(); e != nil; e = e.Next() {
		sub := e.Value.(*Subscription)
		if sub.ToNewsfeedID == toNewsfeedID {
			return sub, nil
		}
	}
	return nil, ErrSubscriptionBetweenNotFound
}

// Stats reports the number of distinct subscribing newsfeeds tracked and the
// total number of subscriptions held, for periodic telemetry.
func (s *SubscriptionStore) Stats() (newsfeeds int, subscriptions int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newsfeeds = len(s.subscriptions)
	for _, l := range s.subscriptions {
		subscriptions += l.Len()
	}
	return newsfeeds, subscriptions
}

// Add inserts a subscription into both indexes. Fails with
// ErrNewsfeedLimitExceeded if newsfeedID is new and the store is already
// tracking maxNewsfeeds distinct subscribing feeds, or with
// ErrSubscriptionLimitExceeded if newsfeedID's outgoing list is already at
// capacity. Neither index is touched on failure.
func (s *SubscriptionStore) Add(sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outgoing, exists := s.subscriptions[sub.NewsfeedID]
	if !exists {
		if len(s.subscriptions) >= s.maxNewsfeeds {
			return ErrNewsfeedLimitExceeded
		}
	} else if outgoing.Len() >= s.maxSubscriptionsPerNewsfeed {
		return ErrSubscriptionLimitExceeded
	}

	if outgoing == nil {
		outgoing = list.New()
		s.subscriptions[sub.NewsfeedID] = outgoing
	}
	incoming, ok := s.subscribers[sub.ToNewsfeedID]
	if !ok {
		incoming = list.New()
		s.subscribers[sub.ToNewsfeedID] = incoming
	}

	outgoing.PushFront(sub)
	incoming.PushFront(sub)
	return nil
}

// DeleteByFQID removes the subscription from both indexes, or fails with
// ErrSubscriptionNotFound if it is not present.
func (s *SubscriptionStore) DeleteByFQID(fqid SubscriptionFQID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outgoing, ok := s.subscriptions[fqid.NewsfeedID]
	if !ok {
		return ErrSubscriptionNotFound
	}

	var found *Subscription
	for e := outgoing.Front(); e != nil; e = e.Next() {
		if e.Value.(*Subscription).ID == fqid.SubscriptionID {
			found = e.Value.(*Subscription)
			outgoing.Remove(e)
			break
		}
	}
	if found == nil {
		return ErrSubscriptionNotFound
	}

	if incoming, ok := s.subscribers[found.ToNewsfeedID]; ok {
		for e := incoming.Front(); e != nil; e = e.Next() {
			if e.Value.(*Subscription).ID == found.ID {
				incoming.Remove(e)
				break
			}
		}
	}
	return nil
}
