package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	GSI1Name      string // entity-scoped listings (user posts, post comments, followers)
	GSI2Name      string // global listings (feed)

	// Media storage
	MediaBucket  string
	MediaBaseURL string

	// Profile rendering service
	RenderServiceURL string

	// Authentication
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Logging and features
	LogLevel   string
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables. In
// development a .env file is read first when present.
func LoadConfig() (*Config, error) {
	if getEnv("ENVIRONMENT", "development") != "production" {
		// Missing .env is fine; real env vars win either way.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "socialmedia"),
		GSI1Name:      getEnv("GSI1_INDEX_NAME", "GSI1"),
		GSI2Name:      getEnv("GSI2_INDEX_NAME", "GSI2"),

		MediaBucket:  getEnv("MEDIA_BUCKET", "socialmedia-media"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", ""),

		RenderServiceURL: getEnv("RENDER_SERVICE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "socialmedia-backend"),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", 168)) * time.Hour,

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required")
		}
		if c.MediaBucket == "" {
			return fmt.Errorf("MEDIA_BUCKET is required")
		}
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "development-secret-change-in-production"
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
