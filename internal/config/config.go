package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigin  string
	OrganizerEmail string
	SMTPHost       string
	SMTPPort       string
	SMTPSender     string
	SMTPPassword   string
}

// LoadConfig reads configuration from a .env file if present, falling back to
// process environment variables and defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "mergington"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		OrganizerEmail: getEnv("ORGANIZER_EMAIL", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPSender:     getEnv("SMTP_SENDER", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
