package feed

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionFQID identifies a subscription record within the newsfeed that
// owns it (the outgoing side).
type SubscriptionFQID struct {
	NewsfeedID     string
	SubscriptionID uuid.UUID
}

// Subscription is the domain entity for "newsfeed_id follows to_newsfeed_id".
type Subscription struct {
	ID            uuid.UUID
	NewsfeedID    string
	ToNewsfeedID  string
	SubscribedAt  time.Time
}

// FQID returns the subscription's fully-qualified id.
func (s *Subscription) FQID() SubscriptionFQID {
	return SubscriptionFQID{NewsfeedID: s.NewsfeedID, SubscriptionID: s.ID}
}

// SerializedSubscription is the wire shape of a Subscription.
type SerializedSubscription struct {
	ID           string `json:"id"`
	NewsfeedID   string `json:"newsfeed_id"`
	ToNewsfeedID string `json:"to_newsfeed_id"`
	SubscribedAt int64  `json:"subscribed_at"`
}

// Serialize converts the entity to its wire shape.
func (s *Subscription) Serialize() SerializedSubscription {
	return SerializedSubscription{
		ID:           s.ID.String(),
		NewsfeedID:   s.NewsfeedID,
		ToNewsfeedID: s.ToNewsfeedID,
		SubscribedAt: s.SubscribedAt.Unix(),
	}
}

// SubscriptionFactory builds Subscription entities.
type SubscriptionFactory struct{}

// NewSubscriptionFactory returns a SubscriptionFactory.
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// CreateNew builds a fresh subscription: new UUID, subscribed now.
func (f *SubscriptionFactory) CreateNew(newsfeedID, toNewsfeedID string) *Subscription {
	return &Subscription{
		ID:           uuid.New(),
		NewsfeedID:   newsfeedID,
		ToNewsfeedID: toNewsfeedID,
		SubscribedAt: time.Now().UTC(),
	}
}

// SubscriptionSpecification enforces subscription-level invariants: the two
// newsfeed ids must be valid and distinct.
type SubscriptionSpecification struct {
	newsfeedIDSpec *NewsfeedIDSpecification
}

// NewSubscriptionSpecification builds a specification backed by the given newsfeed id rules.
func NewSubscriptionSpecification(newsfeedIDSpec *NewsfeedIDSpecification) *SubscriptionSpecification {
	return &SubscriptionSpecification{newsfeedIDSpec: newsfeedIDSpec}
}

// IsSatisfiedBy validates both newsfeed ids and rejects self-subscription.
func (s *SubscriptionSpecification) IsSatisfiedBy(sub *Subscription) error {
	if err := s.newsfeedIDSpec.Check(sub.NewsfeedID); err != nil {
		return err
	}
	if err := s.newsfeedIDSpec.Check(sub.ToNewsfeedID); err != nil {
		return err
	}
	if sub.NewsfeedID == sub.ToNewsfeedID {
		return &SelfSubscriptionError{NewsfeedID: sub.NewsfeedID}
	}
	return nil
}
