package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	LmsApiURL     string // Base URL of the upstream LMS API
	LmsApiTimeout int    // Upstream request timeout in seconds

	DraftTTLMinutes  int // Idle minutes before an editing draft is discarded
	MaxThumbnails    int // Active thumbnails allowed per course
	MaxImageSizeMB   int // Upload size cap per image
	DefaultQuizLimit int // Fallback quiz time limit in seconds
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		LmsApiURL:     getEnv("LMS_API_URL", "http://localhost:4000/api/v1"),
		LmsApiTimeout: getEnvInt("LMS_API_TIMEOUT", 15),

		DraftTTLMinutes:  getEnvInt("DRAFT_TTL_MINUTES", 120),
		MaxThumbnails:    getEnvInt("MAX_THUMBNAILS", 4),
		MaxImageSizeMB:   getEnvInt("MAX_IMAGE_SIZE_MB", 5),
		DefaultQuizLimit: getEnvInt("DEFAULT_QUIZ_LIMIT", 600),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
