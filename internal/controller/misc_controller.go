package controller

import (
	"net/http"

	"newsfeed/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Status handles GET /status/, a liveness probe with no dependency on the
// stores or queue.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, utils.StatusResponse{Status: "OK"})
}
