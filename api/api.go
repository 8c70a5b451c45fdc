package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "gitlab.com/nunet/opencompute-monitor/docs"
	"gitlab.com/nunet/opencompute-monitor/internal/tracing"
)

// Refresher schedules a snapshot refresh outside the request.
type Refresher interface {
	Fire()
}

// Handler serves the latest snapshot held in its store.
type Handler struct {
	store     *SnapshotStore
	refresher Refresher
}

func NewHandler(store *SnapshotStore, refresher Refresher) *Handler {
	return &Handler{store: store, refresher: refresher}
}

func SetupRouter(h *Handler, allowOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(getCustomCorsConfig(allowOrigins)))
	router.Use(otelgin.Middleware(tracing.ServiceName))

	registerRoutes(router, h)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func registerRoutes(router *gin.Engine, h *Handler) {
	v1 := router.Group("/api/v1")

	v1.GET("/hardware", h.HandleHardware)
	v1.GET("/allocated", h.HandleAllocated)
	v1.GET("/snapshot", h.HandleSnapshot)
	v1.GET("/status", h.HandleStatus)
	v1.POST("/refresh", h.HandleRefresh)

	summary := v1.Group("/summary")
	{
		summary.GET("/instances", h.HandleInstances)
		summary.GET("/totals", h.HandleTotals)
	}
}

// getCustomCorsConfig allows any origin when none are configured.
func getCustomCorsConfig(allowOrigins []string) cors.Config {
	config := DefaultConfig()
	if len(allowOrigins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowOrigins
	return config
}

// DefaultConfig returns a read-mostly CORS configuration.
func DefaultConfig() cors.Config {
	return cors.Config{
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Access-Control-Allow-Origin", "Origin", "Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
