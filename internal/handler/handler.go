package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, postSvc service.PostService, sectionSvc service.SectionService, locationSvc service.LocationService, eventSvc service.EventService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPostHandler(postSvc).Register(api)
		NewSectionHandler(sectionSvc).Register(api)
		NewLocationHandler(locationSvc).Register(api)
		NewEventHandler(eventSvc).Register(api)
	}
}

// CORS returns the middleware for browser clients of the public API.
// An empty origin list keeps the permissive default, useful in dev.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return cors.New(cfg)
}
