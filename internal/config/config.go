package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Vendor feed
	FeedURL    string
	VendorName string

	// Storefront Admin API
	ShopifyStoreDomain string
	ShopifyAPIVersion  string
	ShopifyAccessToken string
	ShopifyLocationID  string
	CostPercentage     float64

	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Sync behaviour
	DryRun       bool
	TaxonomyPath string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		FeedURL:            getEnv("FEED_URL", ""),
		VendorName:         getEnv("VENDOR_NAME", "JMBottazzi"),
		ShopifyStoreDomain: getEnv("SHOPIFY_STORE_DOMAIN", ""),
		ShopifyAPIVersion:  getEnv("SHOPIFY_API_VERSION", "2025-04"),
		ShopifyAccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		ShopifyLocationID:  getEnv("SHOPIFY_LOCATION_ID", ""),
		CostPercentage:     getEnvAsFloat("COST_PERCENTAGE", 0.9),
		DatabaseURL:        getEnv("DATABASE_URL", "sqlite://castsync.db"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		DryRun:             getEnvAsBool("DRY_RUN", false),
		TaxonomyPath:       getEnv("TAXONOMY_PATH", ""),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
