package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-dev/prism/internal/ai"
)

// registerAIRoutes wires interest inference. Upstream failures degrade
// to empty add/remove sets; the HTTP response itself always succeeds.
func (s *Server) registerAIRoutes(r *gin.RouterGroup) {
	r.POST("/recommend", s.recommend)
}

func (s *Server) recommend(c *gin.Context) {
	var req ai.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"error":    "Invalid request body",
			"toAdd":    []int{},
			"toRemove": []int{},
		})
		return
	}
	if req.UserQuery == "" || len(req.Interests) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"error":    "Missing userQuery or interests",
			"toAdd":    []int{},
			"toRemove": []int{},
		})
		return
	}

	c.JSON(http.StatusOK, s.ai.Recommend(c.Request.Context(), req))
}
