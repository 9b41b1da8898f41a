package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"newsfeed/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the wire shape of every non-2xx response: a single
// human-readable message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondError classifies err against the feed package's domain errors and
// writes the matching HTTP response. Anything unrecognized is a 500.
func RespondError(c *gin.Context, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("unhandled error")
	} else {
		logrus.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": status,
		}).Warn(message)
	}
	c.JSON(status, ErrorResponse{Message: message})
}

// classify maps a domain error to (status, message). Every error that
// originates in the feed package is a 400; anything else is a 500.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, feed.ErrInvalidNewsfeedID),
		errors.Is(err, feed.ErrSelfSubscription),
		errors.Is(err, feed.ErrSubscriptionAlreadyExists),
		errors.Is(err, feed.ErrSubscriptionNotFound),
		errors.Is(err, feed.ErrSubscriptionBetweenNotFound),
		errors.Is(err, feed.ErrNewsfeedLimitExceeded),
		errors.Is(err, feed.ErrSubscriptionLimitExceeded),
		errors.Is(err, feed.ErrQueueFull),
		errors.Is(err, feed.ErrEventNotFound):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RecoveryMiddleware turns a panic into a 500 instead of tearing down the process.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"panic":       recovered,
			"path":        c.Request.URL.Path,
			"method":      c.Request.Method,
			"stack_trace": string(debug.Stack()),
		}).Error("panic recovered")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	})
}
