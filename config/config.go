package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Device token signing
	JWTSecret string

	// External recipe API
	ExternalRecipeAPIURL string
	ExternalRecipeAPIKey string

	// S3 image storage
	S3Bucket  string
	AWSRegion string
}

// Load reads configuration from the environment, after loading a .env
// file when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:           getenv("SERVER_PORT", "8000"),
		ServerHost:           getenv("SERVER_HOST", "0.0.0.0"),
		DBHost:               getenv("DB_HOST", "localhost"),
		DBPort:               getenv("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getenv("DB_NAME", "rasoighar"),
		DBSSLMode:            getenv("DB_SSL_MODE", "disable"),
		RedisHost:            getenv("REDIS_HOST", "localhost"),
		RedisPort:            getenv("REDIS_PORT", "6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisURL:             os.Getenv("REDIS_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		ExternalRecipeAPIURL: getenv("EXTERNAL_RECIPE_API_URL", "https://api.spoonacular.com"),
		ExternalRecipeAPIKey: os.Getenv("EXTERNAL_RECIPE_API_KEY"),
		S3Bucket:             os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:            os.Getenv("AWS_REGION"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
