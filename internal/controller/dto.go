package controller

// PostEventRequest is the body of POST /newsfeed/:nf/events/. Data is an
// opaque payload the service never interprets; an absent field is treated
// as an empty object.
type PostEventRequest struct {
	Data map[string]interface{} `json:"data"`
}

// PostSubscriptionRequest is the body of POST /newsfeed/:nf/subscriptions/.
// ToNewsfeedID is decoded as a raw JSON value rather than a Go string so the
// handler can run it through NewsfeedIDSpecification.CheckAny, which reports
// a non-string payload as the domain's own typed error instead of a generic
// bind failure.
type PostSubscriptionRequest struct {
	ToNewsfeedID interface{} `json:"to_newsfeed_id" binding:"required"`
}
