package handlers

import (
	"log/slog"

	"github.com/SscSPs/fx_quote_app/cmd/docs"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_quote_app/internal/core/ports/services"
	"github.com/SscSPs/fx_quote_app/internal/middleware"
	"github.com/SscSPs/fx_quote_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with global middleware and all routes.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	events middleware.EventTracker,
) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.MetricsMiddleware(),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
	)

	RegisterRoutes(r, cfg, services, health, events)
	return r
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	events middleware.EventTracker,
) {
	h := &healthHandler{store: health}
	r.GET("/health", h.getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, services, events)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, events middleware.EventTracker) {
	v1 := r.Group("/api/v1")
	registerConversionRoutes(v1, services.Conversion, events)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	return c
}
