package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-dev/prism/internal/screen"
)

// registerDynamicPageRoutes wires the navigation surface. The URL shape
// depends on deployment: brand-scoped assets add a leading :brand
// segment, flat assets go straight to :flowId. Exactly one shape is
// registered per process.
func (s *Server) registerDynamicPageRoutes(r *gin.RouterGroup) {
	if s.store.BrandScoped() {
		r.GET("", s.listBrandFolders)
		r.GET("/:brand", s.listFlows)
		r.GET("/:brand/:flowId", s.listScreens)
		r.GET("/:brand/:flowId/:screenId", s.fetchScreen)
		r.POST("/:brand/:flowId/:screenId", s.submitScreen)
		return
	}
	r.GET("", s.listFlows)
	r.GET("/:flowId", s.listScreens)
	r.GET("/:flowId/:screenId", s.fetchScreen)
	r.POST("/:flowId/:screenId", s.submitScreen)
}

func (s *Server) listBrandFolders(c *gin.Context) {
	brands := s.store.ListBrands()
	c.JSON(http.StatusOK, gin.H{"brands": brands, "count": len(brands)})
}

func (s *Server) listFlows(c *gin.Context) {
	brand := c.Param("brand")
	repo := s.store.Repository(brand)
	flows := repo.ListFlows()

	if s.store.BrandScoped() && len(flows) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"error":           "Brand not found",
			"brand":           brand,
			"availableBrands": s.store.ListBrands(),
		})
		return
	}

	payload := gin.H{"flows": flows, "count": len(flows)}
	if s.store.BrandScoped() {
		payload["brand"] = brand
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) listScreens(c *gin.Context) {
	brand := c.Param("brand")
	flowID := c.Param("flowId")
	repo := s.store.Repository(brand)
	screens := repo.ListScreens(flowID)

	if len(screens) == 0 {
		diag := gin.H{
			"error":          "Flow not found",
			"flowId":         flowID,
			"availableFlows": repo.ListFlows(),
		}
		if s.store.BrandScoped() {
			diag["brand"] = brand
			diag["availableBrands"] = s.store.ListBrands()
		}
		c.JSON(http.StatusOK, diag)
		return
	}

	payload := gin.H{"flowId": flowID, "screens": screens, "count": len(screens)}
	if s.store.BrandScoped() {
		payload["brand"] = brand
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) fetchScreen(c *gin.Context) {
	s.respondWithScreen(c, nil)
}

// submitScreen handles form submission: the body is an arbitrary JSON
// object whose values fully replace the stored form state. A body that
// is not a JSON object is treated as no submission.
func (s *Server) submitScreen(c *gin.Context) {
	var submitted map[string]any
	if err := c.ShouldBindJSON(&submitted); err != nil {
		s.logger.Warn("ignoring unparsable form submission",
			"flow", c.Param("flowId"),
			"screen", c.Param("screenId"),
			"error", err,
		)
		submitted = nil
	}

	// Observability only. If this log line fails the response still
	// goes out unchanged.
	s.logger.Info("form submission",
		"brand", c.Param("brand"),
		"flow", c.Param("flowId"),
		"screen", c.Param("screenId"),
		"values", submitted,
	)
	s.respondWithScreen(c, submitted)
}

func (s *Server) respondWithScreen(c *gin.Context, submitted map[string]any) {
	brand := c.Param("brand")
	flowID := c.Param("flowId")
	screenID := c.Param("screenId")
	repo := s.store.Repository(brand)

	resp, diag := screen.BuildResponse(repo, flowID, screenID, submitted)
	if diag != nil {
		if s.store.BrandScoped() {
			diag.Brand = brand
			diag.AvailableBrands = s.store.ListBrands()
		}
		c.JSON(http.StatusOK, diag)
		return
	}
	c.JSON(http.StatusOK, resp)
}
