package feed

import "github.com/google/uuid"

// EventDispatcherService validates and queues new work. It never touches a
// store directly — dispatch only decides whether a request is well-formed
// and whether the queue has room; all storage and fan-out happens later, on
// a processor pool goroutine.
type EventDispatcherService struct {
	factory       *EventFactory
	specification *EventSpecification
	queue         *EventQueue
}

// NewEventDispatcherService builds a dispatcher over the given queue.
func NewEventDispatcherService(factory *EventFactory, specification *EventSpecification, queue *EventQueue) *EventDispatcherService {
	return &EventDispatcherService{factory: factory, specification: specification, queue: queue}
}

// DispatchNewEvent validates newsfeedID, builds a fresh originator
// event, and queues it for the processor pool to fan out. Returns the event
// as constructed (not yet published) so the caller can answer the request
// immediately without waiting on the queue to drain.
func (d *EventDispatcherService) DispatchNewEvent(newsfeedID string, data map[string]interface{}) (*Event, error) {
	event := d.factory.CreateNew(newsfeedID, data, nil)
	if err := d.specification.IsSatisfiedBy(event); err != nil {
		return nil, err
	}
	if err := d.queue.Put(WorkItem{Action: ActionPost, Event: event}); err != nil {
		return nil, err
	}
	return event, nil
}

// DispatchEventDeletion validates newsfeedID and queues a cascading delete
// of the event identified by eventID.
func (d *EventDispatcherService) DispatchEventDeletion(newsfeedID string, eventID uuid.UUID) error {
	if err := d.specification.newsfeedIDSpec.Check(newsfeedID); err != nil {
		return err
	}
	fqid := EventFQID{NewsfeedID: newsfeedID, EventID: eventID}
	return d.queue.Put(WorkItem{Action: ActionDelete, DeleteFQID: fqid})
}
