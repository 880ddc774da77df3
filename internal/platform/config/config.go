package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration

	// GDS connection
	AmadeusBaseURL   string
	AmadeusAPIKey    string
	AmadeusAPISecret string
	AmadeusTimeout   time.Duration

	// Hotel provider connection
	HotelbedsBaseURL string
	HotelbedsAPIKey  string
	HotelbedsSecret  string
	HotelbedsTimeout time.Duration

	// Search cache; an empty RedisAddr disables caching
	RedisAddr      string
	RedisPassword  string
	SearchCacheTTL time.Duration

	// Requests per client IP on the search route, limiter notation
	SearchRateLimit string

	// Back-office ledger adjustments; the route is absent unless enabled
	EnableManualAdjustments bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	viper.SetDefault("AMADEUS_API_KEY", "")
	viper.SetDefault("AMADEUS_API_SECRET", "")
	viper.SetDefault("AMADEUS_TIMEOUT", "30s")
	viper.SetDefault("HOTELBEDS_BASE_URL", "https://api.test.hotelbeds.com")
	viper.SetDefault("HOTELBEDS_API_KEY", "")
	viper.SetDefault("HOTELBEDS_SECRET", "")
	viper.SetDefault("HOTELBEDS_TIMEOUT", "30s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("SEARCH_CACHE_TTL", "5m")
	viper.SetDefault("SEARCH_RATE_LIMIT", "30-M")
	viper.SetDefault("ENABLE_MANUAL_ADJUSTMENTS", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 24*time.Hour)

	cfg.AmadeusBaseURL = viper.GetString("AMADEUS_BASE_URL")
	cfg.AmadeusAPIKey = viper.GetString("AMADEUS_API_KEY")
	cfg.AmadeusAPISecret = viper.GetString("AMADEUS_API_SECRET")
	if cfg.AmadeusAPIKey == "" || cfg.AmadeusAPISecret == "" {
		log.Println("Warning: AMADEUS_API_KEY / AMADEUS_API_SECRET not set. GDS calls will fail.")
	}
	cfg.AmadeusTimeout = parseDuration("AMADEUS_TIMEOUT", 30*time.Second)

	cfg.HotelbedsBaseURL = viper.GetString("HOTELBEDS_BASE_URL")
	cfg.HotelbedsAPIKey = viper.GetString("HOTELBEDS_API_KEY")
	cfg.HotelbedsSecret = viper.GetString("HOTELBEDS_SECRET")
	if cfg.HotelbedsAPIKey == "" || cfg.HotelbedsSecret == "" {
		log.Println("Warning: HOTELBEDS_API_KEY / HOTELBEDS_SECRET not set. Hotel calls will fail.")
	}
	cfg.HotelbedsTimeout = parseDuration("HOTELBEDS_TIMEOUT", 30*time.Second)

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.SearchCacheTTL = parseDuration("SEARCH_CACHE_TTL", 5*time.Minute)

	cfg.SearchRateLimit = viper.GetString("SEARCH_RATE_LIMIT")
	cfg.EnableManualAdjustments = viper.GetBool("ENABLE_MANUAL_ADJUSTMENTS")

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
