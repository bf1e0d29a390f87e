package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sirisha-padi/EagleBank/cmd/docs"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/dto"
	"github.com/sirisha-padi/EagleBank/internal/middleware"
	"github.com/sirisha-padi/EagleBank/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if err := dto.RegisterCustomValidations(); err != nil {
		slog.Warn("Failed to register custom validations", slog.String("error", err.Error()))
	}

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupPublicV1Routes(r, cfg, services)
	setupAuthenticatedV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicV1Routes configures the unauthenticated /v1 routes: registration
// and login. Login is rate limited per client IP.
func setupPublicV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	public := r.Group("/v1")

	registerPublicUserRoutes(public, services.User)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	authGroup := public.Group("", middleware.RateLimit(ipLimiter))
	registerAuthRoutes(authGroup, services.Auth)
}

// setupAuthenticatedV1Routes configures the /v1 group behind the JWT
// middleware and delegates to the entity route registrations.
func setupAuthenticatedV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
