package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) (*ProcessorPool, *EventQueue, *EventStore, *SubscriptionStore) {
	t.Helper()
	queue := NewEventQueue(100)
	eventStore := NewEventStore(100, 100)
	subStore := NewSubscriptionStore(100, 100)
	pool := NewProcessorPool(queue, eventStore, subStore, NewEventFactory(), 2, nil)
	return pool, queue, eventStore, subStore
}

func drain(t *testing.T, queue *EventQueue) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !queue.IsEmpty() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for queue to drain")
		}
		time.Sleep(time.Millisecond)
	}
	// give the in-flight item's worker a moment to finish its store writes
	time.Sleep(10 * time.Millisecond)
}

func TestProcessorPool_ProcessNewEvent_FansOutToSubscribers(t *testing.T) {
	pool, queue, eventStore, subStore := newTestPool(t)
	subFactory := NewSubscriptionFactory()
	require.NoError(t, subStore.Add(subFactory.CreateNew("bob", "alice")))
	require.NoError(t, subStore.Add(subFactory.CreateNew("carol", "alice")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	factory := NewEventFactory()
	event := factory.CreateNew("alice", map[string]interface{}{"text": "hi"}, nil)
	require.NoError(t, queue.Put(WorkItem{Action: ActionPost, Event: event}))

	drain(t, queue)

	originator := eventStore.GetByNewsfeedID("alice")
	require.Len(t, originator, 1)
	assert.Len(t, originator[0].ChildFQIDs, 2)
	assert.NotNil(t, originator[0].PublishedAt)

	bobEvents := eventStore.GetByNewsfeedID("bob")
	require.Len(t, bobEvents, 1)
	assert.Equal(t, originator[0].FQID(), *bobEvents[0].ParentFQID)
	assert.Equal(t, "hi", bobEvents[0].Data["text"])

	carolEvents := eventStore.GetByNewsfeedID("carol")
	require.Len(t, carolEvents, 1)
}

func TestProcessorPool_ProcessNewEvent_NoSubscribersStillStoresOriginator(t *testing.T) {
	pool, queue, eventStore, _ := newTestPool(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	event := NewEventFactory().CreateNew("alice", nil, nil)
	require.NoError(t, queue.Put(WorkItem{Action: ActionPost, Event: event}))
	drain(t, queue)

	events := eventStore.GetByNewsfeedID("alice")
	require.Len(t, events, 1)
	assert.Empty(t, events[0].ChildFQIDs)
}

func TestProcessorPool_ProcessEventDeletion_CascadesToListedChildrenOnly(t *testing.T) {
	pool, queue, eventStore, subStore := newTestPool(t)
	require.NoError(t, subStore.Add(NewSubscriptionFactory().CreateNew("bob", "alice")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	event := NewEventFactory().CreateNew("alice", nil, nil)
	require.NoError(t, queue.Put(WorkItem{Action: ActionPost, Event: event}))
	drain(t, queue)

	originator := eventStore.GetByNewsfeedID("alice")[0]
	require.NoError(t, queue.Put(WorkItem{Action: ActionDelete, DeleteFQID: originator.FQID()}))
	drain(t, queue)

	assert.Empty(t, eventStore.GetByNewsfeedID("alice"))
	assert.Empty(t, eventStore.GetByNewsfeedID("bob"))
}

func TestProcessorPool_ProcessEventDeletion_MissingEventIsNoop(t *testing.T) {
	pool, queue, _, _ := newTestPool(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	fqid := NewEventFactory().CreateNew("alice", nil, nil).FQID()
	require.NoError(t, queue.Put(WorkItem{Action: ActionDelete, DeleteFQID: fqid}))
	drain(t, queue)
}

func TestProcessorPool_StopWaitsForWorkersToExit(t *testing.T) {
	pool, _, _, _ := newTestPool(t)
	pool.Start(context.Background())
	pool.Stop()
}
