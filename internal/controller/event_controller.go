package controller

import (
	"net/http"

	"newsfeed/internal/feed"
	"newsfeed/internal/middleware"
	"newsfeed/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventController implements the /newsfeed/:nf/events/ resource. It reads
// straight from the event store and writes only through the dispatcher —
// the store is never mutated from a request goroutine.
type EventController struct {
	dispatcher *feed.EventDispatcherService
	store      *feed.EventStore
}

// NewEventController builds an EventController.
func NewEventController(dispatcher *feed.EventDispatcherService, store *feed.EventStore) *EventController {
	return &EventController{dispatcher: dispatcher, store: store}
}

// List handles GET /newsfeed/:nf/events/.
func (ctrl *EventController) List(c *gin.Context) {
	newsfeedID := c.Param("nf")
	events := ctrl.store.GetByNewsfeedID(newsfeedID)

	serialized := make([]feed.SerializedEvent, 0, len(events))
	for _, event := range events {
		serialized = append(serialized, event.Serialize())
	}
	utils.RespondResults(c, serialized)
}

// Post handles POST /newsfeed/:nf/events/.
func (ctrl *EventController) Post(c *gin.Context) {
	newsfeedID := c.Param("nf")

	var req PostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body is a valid request (data defaults to {}); any other
		// bind failure is a malformed payload.
		if err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: err.Error()})
			return
		}
	}

	event, err := ctrl.dispatcher.DispatchNewEvent(newsfeedID, req.Data)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, event.Serialize())
}

// Delete handles DELETE /newsfeed/:nf/events/:eid/.
func (ctrl *EventController) Delete(c *gin.Context) {
	newsfeedID := c.Param("nf")

	eventID, err := uuid.Parse(c.Param("eid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: "invalid event id"})
		return
	}

	if err := ctrl.dispatcher.DispatchEventDeletion(newsfeedID, eventID); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
