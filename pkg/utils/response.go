package utils

import (
	"github.com/gin-gonic/gin"
)

// ResultsResponse wraps a list response in the shape every listing endpoint
// returns: {"results": [...]}.
type ResultsResponse struct {
	Results interface{} `json:"results"`
}

// RespondResults writes a 200 {"results": [...]} body.
func RespondResults(c *gin.Context, results interface{}) {
	c.JSON(200, ResultsResponse{Results: results})
}

// StatusResponse is the wire shape of GET /status/.
type StatusResponse struct {
	Status string `json:"status"`
}
