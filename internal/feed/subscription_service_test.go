package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionService() *SubscriptionService {
	idSpec := NewNewsfeedIDSpecification(100)
	return NewSubscriptionService(NewSubscriptionFactory(), NewSubscriptionSpecification(idSpec), NewSubscriptionStore(100, 100))
}

func TestSubscriptionService_Create(t *testing.T) {
	svc := newTestSubscriptionService()
	sub, err := svc.Create("alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", sub.NewsfeedID)
	assert.Equal(t, "bob", sub.ToNewsfeedID)

	assert.Len(t, svc.ListOutgoing("alice"), 1)
	assert.Len(t, svc.ListIncoming("bob"), 1)
}

func TestSubscriptionService_Create_RejectsDuplicate(t *testing.T) {
	svc := newTestSubscriptionService()
	_, err := svc.Create("alice", "bob")
	require.NoError(t, err)

	_, err = svc.Create("alice", "bob")
	var dup *SubscriptionAlreadyExistsError
	assert.ErrorAs(t, err, &dup)
}

func TestSubscriptionService_Create_RejectsSelfSubscription(t *testing.T) {
	svc := newTestSubscriptionService()
	_, err := svc.Create("alice", "alice")
	var selfErr *SelfSubscriptionError
	assert.ErrorAs(t, err, &selfErr)
}

func TestSubscriptionService_Delete(t *testing.T) {
	svc := newTestSubscriptionService()
	sub, err := svc.Create("alice", "bob")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(sub.FQID()))
	assert.Empty(t, svc.ListOutgoing("alice"))
	assert.Empty(t, svc.ListIncoming("bob"))

	err = svc.Delete(sub.FQID())
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
