package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/user-listing-service/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter builds a gin engine with request id, access log and recovery middleware and all routes mounted.
func NewRouter(logger zerolog.Logger, repo Pinger, userSvc service.UserService) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))
	Register(r, repo, userSvc)
	return r
}

// Register mounts all public routes on the given engine.
// The listing lives at the root (/users) and under the versioned prefix.
func Register(r *gin.Engine, repo Pinger, userSvc service.UserService) {
	h := NewHealthHandler(repo)
	users := NewUserHandler(userSvc)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	users.Register(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		users.Register(api)
	}
}
