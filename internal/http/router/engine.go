package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/middleware"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/service"
)

type EngineConfig struct {
	ServiceName    string // non-empty enables otelgin spans
	AllowedOrigins []string
	MetricsHandler http.Handler
}

// NewEngine builds the gin engine with the full middleware chain and all routes.
func NewEngine(services *service.Services, cfg EngineConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → RequestID tags the
	// context → Logger logs with both → CORS may short-circuit preflights.
	if cfg.ServiceName != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	SetupRoutes(router, services, RouterConfig{
		MetricsHandler: cfg.MetricsHandler,
	})

	return router
}
