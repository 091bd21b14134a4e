package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-dev/prism/internal/brand"
)

// registerBrandRoutes wires the static brand-theming lookups. Unknown
// brands are a plain 404 here: unlike screens there is nothing dynamic
// for the client to recover into.
func (s *Server) registerBrandRoutes(r *gin.RouterGroup) {
	r.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"brands": brand.Summaries()})
	})

	r.GET("/:brandId", func(c *gin.Context) {
		id := c.Param("brandId")
		cfg, ok := brand.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"message":         "Brand '" + id + "' not found",
				"availableBrands": brand.IDs(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"brand": cfg})
	})

	r.GET("/:brandId/theme", func(c *gin.Context) {
		id := c.Param("brandId")
		theme, ok := brand.GetTheme(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Brand '" + id + "' not found"})
			return
		}
		c.JSON(http.StatusOK, theme)
	})

	r.GET("/:brandId/features", func(c *gin.Context) {
		id := c.Param("brandId")
		cfg, ok := brand.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Brand '" + id + "' not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       cfg.ID,
			"name":     cfg.Name,
			"features": cfg.Features,
		})
	})

	r.GET("/:brandId/features/:feature", func(c *gin.Context) {
		id := c.Param("brandId")
		feature := c.Param("feature")
		enabled, ok := brand.FeatureEnabled(id, feature)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Brand '" + id + "' not found"})
			return
		}
		cfg, _ := brand.Get(id)
		c.JSON(http.StatusOK, gin.H{
			"id":      cfg.ID,
			"name":    cfg.Name,
			"feature": feature,
			"enabled": enabled,
		})
	})
}
