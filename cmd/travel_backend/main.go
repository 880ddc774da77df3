package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	_ "github.com/epicquest/travel-backend/cmd/docs"
	"github.com/epicquest/travel-backend/internal/cache"
	"github.com/epicquest/travel-backend/internal/core/services"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
	"github.com/epicquest/travel-backend/internal/handlers"
	"github.com/epicquest/travel-backend/internal/hotels/hotelbeds"
	"github.com/epicquest/travel-backend/internal/middleware"
	"github.com/epicquest/travel-backend/internal/platform/config"
	"github.com/epicquest/travel-backend/internal/refdata"
	"github.com/epicquest/travel-backend/internal/repositories/database/pgsql"
	"github.com/epicquest/travel-backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Travel Backend API
// @version 1.0
// @description Flight and hotel search, booking and wallet settlement backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lookup, err := refdata.NewStore()
	if err != nil {
		logger.Error("Failed to load reference data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gds := amadeus.NewClient(amadeus.Config{
		BaseURL:   cfg.AmadeusBaseURL,
		APIKey:    cfg.AmadeusAPIKey,
		APISecret: cfg.AmadeusAPISecret,
		Timeout:   cfg.AmadeusTimeout,
	}, logger)

	hotelProvider := hotelbeds.NewClient(hotelbeds.Config{
		BaseURL: cfg.HotelbedsBaseURL,
		APIKey:  cfg.HotelbedsAPIKey,
		Secret:  cfg.HotelbedsSecret,
		Timeout: cfg.HotelbedsTimeout,
	}, logger)

	var searchCache cache.SearchCache = cache.NoOpCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		searchCache = cache.NewRedisCache(redisClient, cfg.SearchCacheTTL, logger)
		logger.Info("Search cache enabled", slog.String("addr", cfg.RedisAddr))
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceProvider(
		services.RepositorySet{
			Bookings:     repos.Bookings,
			GdsRefs:      repos.GdsRefs,
			Transactions: repos.Transactions,
			Owners:       repos.Owners,
			Currencies:   repos.Currencies,
		},
		gds,
		hotelProvider,
		lookup,
		searchCache,
		cfg.JWTSecret,
		cfg.JWTExpiryDuration,
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a short-lived
// database/sql connection, separate from the application pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
