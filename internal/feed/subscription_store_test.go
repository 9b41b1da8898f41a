package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionStore_AddAndLookupBothIndexes(t *testing.T) {
	store := NewSubscriptionStore(10, 10)
	factory := NewSubscriptionFactory()

	sub := factory.CreateNew("alice", "bob")
	require.NoError(t, store.Add(sub))

	outgoing := store.GetByNewsfeedID("alice")
	require.Len(t, outgoing, 1)
	assert.Equal(t, sub.ID, outgoing[0].ID)

	incoming := store.GetByToNewsfeedID("bob")
	require.Len(t, incoming, 1)
	assert.Equal(t, sub.ID, incoming[0].ID)
}

func TestSubscriptionStore_GetByToNewsfeedID_MostRecentFirst(t *testing.T) {
	store := NewSubscriptionStore(10, 10)
	factory := NewSubscriptionFactory()

	s1 := factory.CreateNew("alice", "carol")
	s2 := factory.CreateNew("bob", "carol")
	require.NoError(t, store.Add(s1))
	require.NoError(t, store.Add(s2))

	subs := store.GetByToNewsfeedID("carol")
	require.Len(t, subs, 2)
	assert.Equal(t, s2.ID, subs[0].ID)
	assert.Equal(t, s1.ID, subs[1].ID)
}

func TestSubscriptionStore_GetBetween(t *testing.T) {
	store := NewSubscriptionStore(10, 10)
	factory := NewSubscriptionFactory()
	sub := factory.CreateNew("alice", "bob")
	require.NoError(t, store.Add(sub))

	found, err := store.GetBetween("alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)

	_, err = store.GetBetween("alice", "carol")
	assert.ErrorIs(t, err, ErrSubscriptionBetweenNotFound)

	_, err = store.GetBetween("nobody", "bob")
	assert.ErrorIs(t, err, ErrSubscriptionBetweenNotFound)
}

func TestSubscriptionStore_Add_NewsfeedLimitExceeded(t *testing.T) {
	store := NewSubscriptionStore(1, 10)
	factory := NewSubscriptionFactory()

	require.NoError(t, store.Add(factory.CreateNew("alice", "bob")))
	err := store.Add(factory.CreateNew("carol", "bob"))
	assert.ErrorIs(t, err, ErrNewsfeedLimitExceeded)
}

func TestSubscriptionStore_Add_SubscriptionLimitExceeded_NeverEvicts(t *testing.T) {
	store := NewSubscriptionStore(10, 1)
	factory := NewSubscriptionFactory()

	s1 := factory.CreateNew("alice", "bob")
	require.NoError(t, store.Add(s1))

	err := store.Add(factory.CreateNew("alice", "carol"))
	assert.ErrorIs(t, err, ErrSubscriptionLimitExceeded)

	// the original subscription must still be intact — no silent eviction
	outgoing := store.GetByNewsfeedID("alice")
	require.Len(t, outgoing, 1)
	assert.Equal(t, s1.ID, outgoing[0].ID)
}

func TestSubscriptionStore_DeleteByFQID_RemovesFromBothIndexes(t *testing.T) {
	store := NewSubscriptionStore(10, 10)
	factory := NewSubscriptionFactory()
	sub := factory.CreateNew("alice", "bob")
	require.NoError(t, store.Add(sub))

	require.NoError(t, store.DeleteByFQID(sub.FQID()))

	assert.Empty(t, store.GetByNewsfeedID("alice"))
	assert.Empty(t, store.GetByToNewsfeedID("bob"))
}

func TestSubscriptionStore_DeleteByFQID_NotFound(t *testing.T) {
	store := NewSubscriptionStore(10, 10)
	factory := NewSubscriptionFactory()
	sub := factory.CreateNew("alice", "bob")
	require.NoError(t, store.Add(sub))
	require.NoError(t, store.DeleteByFQID(sub.FQID()))

	err := store.DeleteByFQID(sub.FQID())
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	err = store.DeleteByFQID(SubscriptionFQID{NewsfeedID: "nobody", SubscriptionID: sub.ID})
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
