// router/router.go

package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dev-mohitbeniwal/mobility/controller"
	"github.com/dev-mohitbeniwal/mobility/metrics"
	"github.com/dev-mohitbeniwal/mobility/middleware"
)

type Options struct {
	AllowedOrigins    []string
	RateLimitClient   *redis.Client
	RateLimitRequests int
	RateLimitDuration time.Duration
	// HealthCheck reports whether the backing stores are reachable. Nil
	// means always healthy.
	HealthCheck func(ctx context.Context) error
}

func SetupRouter(
	controllers *controller.Controllers,
	verifier middleware.CredentialVerifier,
	opts Options,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", healthz(opts.HealthCheck))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(opts.RateLimitClient, opts.RateLimitRequests, opts.RateLimitDuration))

	controllers.RepairStation.RegisterRoutes(api)
	controllers.Admin.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.Authenticate(verifier))
	controllers.User.RegisterRoutes(protected)
	controllers.Vehicle.RegisterRoutes(protected)
	controllers.Repair.RegisterRoutes(protected)
	controllers.SelfCheck.RegisterRoutes(protected)
	controllers.Admin.RegisterRoutes(protected)

	return router
}

func healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
