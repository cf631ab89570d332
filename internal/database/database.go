package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brandforge/brandforge-backend/internal/models"
)

// DB is the global database instance
var DB *gorm.DB

// InitDB initializes the database connection and performs migrations
func InitDB() (*gorm.DB, error) {
	// Get database connection parameters from environment variables
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Validate required environment variables
	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Create DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the schema. Brand must be migrated before Campaign so the
	// cascade foreign key can be created.
	err = db.AutoMigrate(
		&models.Brand{},
		&models.Campaign{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Migration: ensure the secondary lookup indexes exist. AutoMigrate creates
	// them from the model tags on fresh databases; this covers databases created
	// before the tags were added.
	secondaryIndexes := []struct {
		name   string
		table  string
		column string
	}{
		{"idx_brands_company_name", "brands", "company_name"},
		{"idx_campaigns_brand_id", "campaigns", "brand_id"},
		{"idx_campaigns_status", "campaigns", "status"},
	}

	for _, idx := range secondaryIndexes {
		var indexExists bool
		err = db.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE schemaname = 'public'
				AND tablename = ?
				AND indexname = ?
			)
		`, idx.table, idx.name).Scan(&indexExists).Error
		if err != nil {
			logrus.Warnf("Failed to check if index %s exists: %v", idx.name, err)
			continue
		}
		if !indexExists {
			logrus.Infof("Creating index %s on %s(%s)...", idx.name, idx.table, idx.column)
			err = db.Exec(fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", idx.name, idx.table, idx.column)).Error
			if err != nil {
				logrus.Warnf("Failed to create index %s: %v", idx.name, err)
			} else {
				logrus.Infof("Successfully created index %s", idx.name)
			}
		}
	}

	// Migration: ensure the cascade foreign key exists on campaigns.brand_id
	var fkExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE table_schema = 'public'
			AND table_name = 'campaigns'
			AND constraint_name = 'fk_brands_campaigns'
		)
	`).Scan(&fkExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if campaigns foreign key exists: %v", err)
	} else if !fkExists {
		logrus.Info("Adding cascade foreign key on campaigns.brand_id...")
		err = db.Exec(`
			ALTER TABLE campaigns
			ADD CONSTRAINT fk_brands_campaigns
			FOREIGN KEY (brand_id)
			REFERENCES brands(id)
			ON DELETE CASCADE
		`).Error
		if err != nil {
			logrus.Warnf("Failed to add foreign key constraint: %v", err)
		} else {
			logrus.Info("Successfully added cascade foreign key on campaigns.brand_id")
		}
	}

	// Set global DB instance
	DB = db

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
