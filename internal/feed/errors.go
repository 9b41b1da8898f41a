package feed

import "errors"

// Sentinel errors for the newsfeed domain. Handlers translate these (and the
// typed errors that wrap them) into HTTP responses; errors.Is still works
// against the sentinel for callers that only care about the coarse category.
var (
	// ErrInvalidNewsfeedID is returned when a newsfeed id fails validation.
	ErrInvalidNewsfeedID = errors.New("invalid newsfeed id")

	// ErrEventNotFound is returned when an event lookup by FQID misses.
	ErrEventNotFound = errors.New("event not found")

	// ErrNewsfeedLimitExceeded is returned when a store would have to track
	// more distinct newsfeed ids than its configured maximum.
	ErrNewsfeedLimitExceeded = errors.New("newsfeed limit exceeded")

	// ErrSubscriptionLimitExceeded is returned when a newsfeed's outgoing
	// subscription count is already at its configured maximum.
	ErrSubscriptionLimitExceeded = errors.New("subscription limit exceeded")

	// ErrSubscriptionNotFound is returned when a subscription lookup by FQID misses.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriptionBetweenNotFound is returned when no subscription exists
	// between the requested pair of newsfeeds.
	ErrSubscriptionBetweenNotFound = errors.New("subscription between newsfeeds not found")

	// ErrSelfSubscription is returned when a newsfeed attempts to subscribe to itself.
	ErrSelfSubscription = errors.New("newsfeed cannot subscribe to itself")

	// ErrSubscriptionAlreadyExists is returned when a subscription already
	// exists for the requested (newsfeed_id, to_newsfeed_id) pair.
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")

	// ErrQueueFull is returned by a non-blocking Put against a saturated queue.
	ErrQueueFull = errors.New("event queue is full")
)

// NewsfeedIDTypeError distinguishes the "wrong type" validation failure from
// "too long" for diagnostics, per the newsfeed id specification.
type NewsfeedIDTypeError struct {
	Value interface{}
}

func (e *NewsfeedIDTypeError) Error() string {
	return "newsfeed id type is invalid"
}

func (e *NewsfeedIDTypeError) Unwrap() error { return ErrInvalidNewsfeedID }

// NewsfeedIDTooLongError reports the offending id (truncated) and the configured limit.
type NewsfeedIDTooLongError struct {
	NewsfeedID string
	MaxLength  int
}

func (e *NewsfeedIDTooLongError) Error() string {
	truncated := e.NewsfeedID
	if len(truncated) > e.MaxLength {
		truncated = truncated[:e.MaxLength]
	}
	return "newsfeed id \"" + truncated + "...\" is too long"
}

func (e *NewsfeedIDTooLongError) Unwrap() error { return ErrInvalidNewsfeedID }

// SelfSubscriptionError reports which newsfeed attempted to subscribe to itself.
type SelfSubscriptionError struct {
	NewsfeedID string
}

func (e *SelfSubscriptionError) Error() string {
	return "subscription of newsfeed \"" + e.NewsfeedID + "\" to itself is restricted"
}

func (e *SelfSubscriptionError) Unwrap() error { return ErrSelfSubscription }

// SubscriptionAlreadyExistsError reports the duplicate pair.
type SubscriptionAlreadyExistsError struct {
	NewsfeedID   string
	ToNewsfeedID string
}

func (e *SubscriptionAlreadyExistsError) Error() string {
	return "subscription from newsfeed \"" + e.NewsfeedID + "\" to \"" + e.ToNewsfeedID + "\" already exists"
}

func (e *SubscriptionAlreadyExistsError) Unwrap() error { return ErrSubscriptionAlreadyExists }
