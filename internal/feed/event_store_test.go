package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStore_AddAndGetByNewsfeedID_MostRecentFirst(t *testing.T) {
	store := NewEventStore(10, 10)
	factory := NewEventFactory()

	e1 := factory.CreateNew("alice", map[string]interface{}{"n": 1}, nil)
	e2 := factory.CreateNew("alice", map[string]interface{}{"n": 2}, nil)

	require.NoError(t, store.Add(e1))
	require.NoError(t, store.Add(e2))

	events := store.GetByNewsfeedID("alice")
	require.Len(t, events, 2)
	assert.Equal(t, e2.ID, events[0].ID)
	assert.Equal(t, e1.ID, events[1].ID)
}

func TestEventStore_GetByNewsfeedID_UnknownFeedReturnsEmpty(t *testing.T) {
	store := NewEventStore(10, 10)
	assert.Empty(t, store.GetByNewsfeedID("nobody"))
}

func TestEventStore_GetByFQID_NotFound(t *testing.T) {
	store := NewEventStore(10, 10)
	factory := NewEventFactory()
	e1 := factory.CreateNew("alice", nil, nil)
	require.NoError(t, store.Add(e1))

	_, err := store.GetByFQID("alice", factory.CreateNew("alice", nil, nil).ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = store.GetByFQID("bob", e1.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	found, err := store.GetByFQID("alice", e1.ID)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, found.ID)
}

func TestEventStore_Add_NewsfeedLimitExceeded(t *testing.T) {
	store := NewEventStore(1, 10)
	factory := NewEventFactory()

	require.NoError(t, store.Add(factory.CreateNew("alice", nil, nil)))
	err := store.Add(factory.CreateNew("bob", nil, nil))
	assert.ErrorIs(t, err, ErrNewsfeedLimitExceeded)
}

func TestEventStore_Add_EvictsOldestWhenFeedFull(t *testing.T) {
	store := NewEventStore(10, 2)
	factory := NewEventFactory()

	e1 := factory.CreateNew("alice", nil, nil)
	e2 := factory.CreateNew("alice", nil, nil)
	e3 := factory.CreateNew("alice", nil, nil)

	require.NoError(t, store.Add(e1))
	require.NoError(t, store.Add(e2))
	require.NoError(t, store.Add(e3))

	events := store.GetByNewsfeedID("alice")
	require.Len(t, events, 2)
	assert.Equal(t, e3.ID, events[0].ID)
	assert.Equal(t, e2.ID, events[1].ID)

	_, err := store.GetByFQID("alice", e1.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventStore_DeleteByFQID_IsIdempotent(t *testing.T) {
	store := NewEventStore(10, 10)
	factory := NewEventFactory()
	e1 := factory.CreateNew("alice", nil, nil)
	require.NoError(t, store.Add(e1))

	store.DeleteByFQID(e1.FQID())
	assert.Empty(t, store.GetByNewsfeedID("alice"))

	// deleting again, and deleting from a feed that was never seen, must not panic
	store.DeleteByFQID(e1.FQID())
	store.DeleteByFQID(EventFQID{NewsfeedID: "nobody", EventID: e1.ID})
}
