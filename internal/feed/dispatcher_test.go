package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(queueCapacity int) (*EventDispatcherService, *EventQueue) {
	idSpec := NewNewsfeedIDSpecification(100)
	queue := NewEventQueue(queueCapacity)
	dispatcher := NewEventDispatcherService(NewEventFactory(), NewEventSpecification(idSpec), queue)
	return dispatcher, queue
}

func TestEventDispatcherService_DispatchNewEvent(t *testing.T) {
	dispatcher, queue := newTestDispatcher(10)

	event, err := dispatcher.DispatchNewEvent("alice", map[string]interface{}{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "alice", event.NewsfeedID)
	assert.Equal(t, 1, queue.Len())
}

func TestEventDispatcherService_DispatchNewEvent_InvalidNewsfeedID(t *testing.T) {
	idSpec := NewNewsfeedIDSpecification(2)
	queue := NewEventQueue(10)
	dispatcher := NewEventDispatcherService(NewEventFactory(), NewEventSpecification(idSpec), queue)

	_, err := dispatcher.DispatchNewEvent("too-long-id", nil)
	var tooLong *NewsfeedIDTooLongError
	assert.ErrorAs(t, err, &tooLong)
	assert.True(t, queue.IsEmpty())
}

func TestEventDispatcherService_DispatchNewEvent_QueueFull(t *testing.T) {
	dispatcher, _ := newTestDispatcher(1)
	_, err := dispatcher.DispatchNewEvent("alice", nil)
	require.NoError(t, err)

	_, err = dispatcher.DispatchNewEvent("alice", nil)
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestEventDispatcherService_DispatchEventDeletion(t *testing.T) {
	dispatcher, queue := newTestDispatcher(10)
	require.NoError(t, dispatcher.DispatchEventDeletion("alice", uuid.New()))
	assert.False(t, queue.IsEmpty())
}

func TestEventDispatcherService_DispatchEventDeletion_InvalidNewsfeedID(t *testing.T) {
	idSpec := NewNewsfeedIDSpecification(2)
	queue := NewEventQueue(10)
	dispatcher := NewEventDispatcherService(NewEventFactory(), NewEventSpecification(idSpec), queue)

	err := dispatcher.DispatchEventDeletion("too-long-id", uuid.New())
	var tooLong *NewsfeedIDTooLongError
	assert.ErrorAs(t, err, &tooLong)
}
