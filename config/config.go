package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server
	ServerPort string
	AppEnv     string

	// Uploads
	UploadDir string

	// Auth
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	// Client-side API roots (dev vs production)
	APIURL     string
	ProdAPIURL string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "rentacar123"),
		DBName:     getEnv("DB_NAME", "rentacar"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		JWTSecret:     getEnv("JWT_SECRET", "rentacar-dev-secret"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "remsisrentacar@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "carcar2525"),

		APIURL:     getEnv("API_URL", "http://localhost:8080/api"),
		ProdAPIURL: getEnv("PROD_API_URL", ""),
	}

	if config.AppEnv == "production" {
		if config.JWTSecret == "rentacar-dev-secret" {
			log.Println("WARNING: JWT_SECRET not set, using development default")
		}
		if config.ProdAPIURL == "" {
			log.Println("WARNING: PROD_API_URL not set")
		}
	}

	return config
}

// ClientAPIURL returns the API root the admin client should target,
// switching between the development and production value by app mode.
func (c *Config) ClientAPIURL() string {
	if c.AppEnv == "production" && c.ProdAPIURL != "" {
		return strings.TrimRight(c.ProdAPIURL, "/")
	}
	return strings.TrimRight(c.APIURL, "/")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
