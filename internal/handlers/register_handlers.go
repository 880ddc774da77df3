package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/epicquest/travel-backend/cmd/docs"
	"github.com/epicquest/travel-backend/internal/core/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
	"github.com/epicquest/travel-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	svc *services.ServiceProvider,
) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			slog.Warn("Failed to register custom validators", slog.String("error", err.Error()))
		}
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, svc)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	svc *services.ServiceProvider,
) {
	public := r.Group("/api/v1")
	protected := r.Group("/api/v1", middleware.Auth(svc.Auth))

	var searchLimiter gin.HandlerFunc
	if cfg.SearchRateLimit != "" {
		limiter, err := middleware.RateLimit(cfg.SearchRateLimit)
		if err != nil {
			slog.Warn("Search rate limit disabled", slog.String("error", err.Error()))
		} else {
			searchLimiter = limiter
		}
	}

	registerAuthRoutes(public, svc.Auth)
	registerPaymentRoutes(public, svc.Ledger)
	registerFlightRoutes(public, protected, svc.Flight, searchLimiter)
	registerHotelRoutes(public, svc.Hotel)
	registerBookingRoutes(protected, svc.Booking, svc.Flight)
	registerTransactionRoutes(protected, svc.Ledger, cfg.EnableManualAdjustments)
	registerCurrencyRoutes(public, protected, svc.Currency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
