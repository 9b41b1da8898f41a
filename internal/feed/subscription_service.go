package feed

// SubscriptionService is the read/write entry point for subscriptions: the
// HTTP layer never touches SubscriptionStore directly. Grounded in the
// original SubscriptionService, which sits in front of its repository for
// exactly the same reason — centralizing the duplicate and self-subscription
// checks in one place.
type SubscriptionService struct {
	factory       *SubscriptionFactory
	specification *SubscriptionSpecification
	store         *SubscriptionStore
}

// NewSubscriptionService builds a service over the given store.
func NewSubscriptionService(factory *SubscriptionFactory, specification *SubscriptionSpecification, store *SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{factory: factory, specification: specification, store: store}
}

// ListOutgoing returns the newsfeeds newsfeedID has subscribed to.
func (s *SubscriptionService) ListOutgoing(newsfeedID string) []*Subscription {
	return s.store.GetByNewsfeedID(newsfeedID)
}

// ListIncoming returns the newsfeeds subscribed to newsfeedID.
func (s *SubscriptionService) ListIncoming(newsfeedID string) []*Subscription {
	return s.store.GetByToNewsfeedID(newsfeedID)
}

// Create subscribes newsfeedID to toNewsfeedID. Fails with
// ErrSubscriptionAlreadyExists if the pair is already subscribed, with
// SelfSubscriptionError if newsfeedID == toNewsfeedID, or with a
// NewsfeedIDTooLongError if either id is invalid.
func (s *SubscriptionService) Create(newsfeedID, toNewsfeedID string) (*Subscription, error) {
	if _, err := s.store.GetBetween(newsfeedID, toNewsfeedID); err == nil {
		return nil, &SubscriptionAlreadyExistsError{NewsfeedID: newsfeedID, ToNewsfeedID: toNewsfeedID}
	}

	sub := s.factory.CreateNew(newsfeedID, toNewsfeedID)
	if err := s.specification.IsSatisfiedBy(sub); err != nil {
		return nil, err
	}

	if err := s.store.Add(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete removes the subscription identified by fqid.
func (s *SubscriptionService) Delete(fqid SubscriptionFQID) error {
	return s.store.DeleteByFQID(fqid)
}
