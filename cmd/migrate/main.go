package main

import (
	"log"
	"os"

	"github.com/brandforge/brandforge-backend/internal/database"
	"github.com/brandforge/brandforge-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// migrate connects to the configured database and brings the brands and
// campaigns schema up to date, then exits. Applications embedding the store
// packages can call database.InitDB directly instead.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection and run migrations
	if _, err := database.InitDB(); err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	logrus.Info("Schema migration completed")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
