package feed

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventFQID is the fully-qualified event identifier: (newsfeed_id, event_id).
// It uniquely identifies an event across the whole system and is the only
// handle the cascading-delete path needs — the lineage graph is a shallow
// tree of ids, never pointers.
type EventFQID struct {
	NewsfeedID string
	EventID    uuid.UUID
}

// MarshalJSON renders the FQID as the wire-level 2-tuple [newsfeed_id, event_id].
func (f EventFQID) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{f.NewsfeedID, f.EventID.String()})
}

// UnmarshalJSON parses the wire-level 2-tuple back into an EventFQID.
func (f *EventFQID) UnmarshalJSON(data []byte) error {
	var tuple [2]string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	id, err := uuid.Parse(tuple[1])
	if err != nil {
		return err
	}
	f.NewsfeedID = tuple[0]
	f.EventID = id
	return nil
}

// Event is the domain entity for a single newsfeed event, originator or
// subscriber-side replica.
type Event struct {
	ID           uuid.UUID
	NewsfeedID   string
	Data         map[string]interface{}
	ParentFQID   *EventFQID
	ChildFQIDs   []EventFQID
	FirstSeenAt  time.Time
	PublishedAt  *time.Time
}

// FQID returns the event's fully-qualified id.
func (e *Event) FQID() EventFQID {
	return EventFQID{NewsfeedID: e.NewsfeedID, EventID: e.ID}
}

// TrackPublishingTime stamps the event as published now.
func (e *Event) TrackPublishingTime() {
	now := time.Now().UTC()
	e.PublishedAt = &now
}

// TrackChildFQIDs accumulates child FQIDs onto the originator event. Called
// once per fan-out, in subscription-list order (most-recent subscriber first).
func (e *Event) TrackChildFQIDs(children []EventFQID) {
	e.ChildFQIDs = append(e.ChildFQIDs, children...)
}

// SerializedEvent is the wire/storage shape of an Event: integer epoch
// seconds for timestamps, 2-tuples for FQIDs, matching spec.md's wire format
// exactly so round-tripping through JSON is lossless (to the second).
type SerializedEvent struct {
	ID          string                 `json:"id"`
	NewsfeedID  string                 `json:"newsfeed_id"`
	Data        map[string]interface{} `json:"data"`
	ParentFQID  *EventFQID             `json:"parent_fqid"`
	ChildFQIDs  []EventFQID            `json:"child_fqids"`
	FirstSeenAt int64                  `json:"first_seen_at"`
	PublishedAt *int64                 `json:"published_at"`
}

// Serialize converts the entity to its wire shape.
func (e *Event) Serialize() SerializedEvent {
	children := e.ChildFQIDs
	if children == nil {
		children = []EventFQID{}
	}

	out := SerializedEvent{
		ID:          e.ID.String(),
		NewsfeedID:  e.NewsfeedID,
		Data:        e.Data,
		ParentFQID:  e.ParentFQID,
		ChildFQIDs:  children,
		FirstSeenAt: e.FirstSeenAt.Unix(),
	}
	if e.PublishedAt != nil {
		published := e.PublishedAt.Unix()
		out.PublishedAt = &published
	}
	return out
}

// EventFromSerialized reconstructs an Event from its wire shape.
func EventFromSerialized(data SerializedEvent) (*Event, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, err
	}

	event := &Event{
		ID:          id,
		NewsfeedID:  data.NewsfeedID,
		Data:        data.Data,
		ParentFQID:  data.ParentFQID,
		ChildFQIDs:  data.ChildFQIDs,
		FirstSeenAt: time.Unix(data.FirstSeenAt, 0).UTC(),
	}
	if data.PublishedAt != nil {
		published := time.Unix(*data.PublishedAt, 0).UTC()
		event.PublishedAt = &published
	}
	return event, nil
}

// EventFactory creates events, always via fresh UUID for new events or by
// reconstructing them from their serialized wire shape.
type EventFactory struct{}

// NewEventFactory returns an EventFactory.
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// CreateNew builds a fresh event: new UUID, empty child FQIDs, first-seen now,
// not yet published.
func (f *EventFactory) CreateNew(newsfeedID string, data map[string]interface{}, parentFQID *EventFQID) *Event {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Event{
		ID:          uuid.New(),
		NewsfeedID:  newsfeedID,
		Data:        data,
		ParentFQID:  parentFQID,
		ChildFQIDs:  []EventFQID{},
		FirstSeenAt: time.Now().UTC(),
	}
}

// CreateFromSerialized reconstructs an event from its serialized wire shape.
// The queue hands events over as *Event values, so the processor pool does
// not go through this path.
func (f *EventFactory) CreateFromSerialized(data SerializedEvent) (*Event, error) {
	return EventFromSerialized(data)
}

// EventSpecification validates an event's newsfeed id before it is queued.
type EventSpecification struct {
	newsfeedIDSpec *NewsfeedIDSpecification
}

// NewEventSpecification builds a specification backed by the given newsfeed id rules.
func NewEventSpecification(newsfeedIDSpec *NewsfeedIDSpecification) *EventSpecification {
	return &EventSpecification{newsfeedIDSpec: newsfeedIDSpec}
}

// IsSatisfiedBy validates the event's newsfeed id.
func (s *EventSpecification) IsSatisfiedBy(event *Event) error {
	return s.newsfeedIDSpec.Check(event.NewsfeedID)
}
