package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration, loaded once at boot.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Access tokens
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh tokens
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string
	RefreshTokenSecret         string

	// External OAuth providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string

	// Analytics
	PostHogAPIKey string

	// File storage (company logos)
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string

	// Invoice numbering
	InvoiceCounterMaxRetries uint64
}

const (
	defaultJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	defaultRefreshSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// stringOrDefault reads key from the environment, logging a warning and
// falling back when it is unset.
func stringOrDefault(key, fallback string) string {
	v := viper.GetString(key)
	if v == "" {
		log.Printf("Warning: %s not set. Defaulting to %q.\n", key, fallback)
		return fallback
	}
	return v
}

// durationOrDefault parses key as a time.Duration (e.g. "1h", "168h"),
// logging a warning and falling back when unset or invalid.
func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		} else {
			log.Printf("Warning: %s not set. Defaulting to %s.\n", key, fallback)
		}
		return fallback
	}
	return d
}

// LoadConfig loads configuration from the environment, with a .env file as
// the lowest-priority source.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("S3_REGION", "ap-south-1")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("INVOICE_COUNTER_MAX_RETRIES", 5)
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),

		JWTExpiryDuration: durationOrDefault("JWT_EXPIRY_DURATION", time.Hour),
		JWTIssuer:         stringOrDefault("JWT_ISSUER", "leadbill"),

		RefreshTokenExpiryDuration: durationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour),
		RefreshTokenCookieName:     stringOrDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid"),
		RefreshTokenCookiePath:     stringOrDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth"),

		GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    viper.GetString("FRONTEND_BASE_URL"),

		PostHogAPIKey: viper.GetString("POSTHOG_API_KEY"),

		S3Bucket:        viper.GetString("S3_BUCKET"),
		S3Region:        viper.GetString("S3_REGION"),
		S3PublicBaseURL: viper.GetString("S3_PUBLIC_BASE_URL"),

		InvoiceCounterMaxRetries: viper.GetUint64("INVOICE_COUNTER_MAX_RETRIES"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. NOT FOR PRODUCTION.")
		cfg.JWTSecret = defaultJWTSecret
	}
	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure secret. NOT FOR PRODUCTION.")
		cfg.RefreshTokenSecret = defaultRefreshSecret
	}

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth variables incomplete. Google login will not function.")
	}
	if cfg.S3Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Logo uploads will be rejected.")
	}
	if cfg.InvoiceCounterMaxRetries == 0 {
		cfg.InvoiceCounterMaxRetries = 5
	}

	return cfg, nil
}
