package controller

import (
	"net/http"

	"newsfeed/internal/feed"
	"newsfeed/internal/middleware"
	"newsfeed/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionController implements the /newsfeed/:nf/subscriptions/ and
// /newsfeed/:nf/subscribers/subscriptions/ resources.
type SubscriptionController struct {
	service *feed.SubscriptionService
	idSpec  *feed.NewsfeedIDSpecification
}

// NewSubscriptionController builds a SubscriptionController.
func NewSubscriptionController(service *feed.SubscriptionService, idSpec *feed.NewsfeedIDSpecification) *SubscriptionController {
	return &SubscriptionController{service: service, idSpec: idSpec}
}

// ListOutgoing handles GET /newsfeed/:nf/subscriptions/.
func (ctrl *SubscriptionController) ListOutgoing(c *gin.Context) {
	newsfeedID := c.Param("nf")
	utils.RespondResults(c, serializeSubscriptions(ctrl.service.ListOutgoing(newsfeedID)))
}

// ListIncoming handles GET /newsfeed/:nf/subscribers/subscriptions/.
func (ctrl *SubscriptionController) ListIncoming(c *gin.Context) {
	newsfeedID := c.Param("nf")
	utils.RespondResults(c, serializeSubscriptions(ctrl.service.ListIncoming(newsfeedID)))
}

// Post handles POST /newsfeed/:nf/subscriptions/.
func (ctrl *SubscriptionController) Post(c *gin.Context) {
	newsfeedID := c.Param("nf")

	var req PostSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: err.Error()})
		return
	}

	toNewsfeedID, err := ctrl.idSpec.CheckAny(req.ToNewsfeedID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	sub, err := ctrl.service.Create(newsfeedID, toNewsfeedID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub.Serialize())
}

// Delete handles DELETE /newsfeed/:nf/subscriptions/:sid/.
func (ctrl *SubscriptionController) Delete(c *gin.Context) {
	newsfeedID := c.Param("nf")

	subscriptionID, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: "invalid subscription id"})
		return
	}

	fqid := feed.SubscriptionFQID{NewsfeedID: newsfeedID, SubscriptionID: subscriptionID}
	if err := ctrl.service.Delete(fqid); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func serializeSubscriptions(subs []*feed.Subscription) []feed.SerializedSubscription {
	serialized := make([]feed.SerializedSubscription, 0, len(subs))
	for _, sub := range subs {
		serialized = append(serialized, sub.Serialize())
	}
	return serialized
}
