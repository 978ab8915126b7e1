package database

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akash247777/Rental-Management-System/internal/model"
	"github.com/akash247777/Rental-Management-System/pkg/config"
	applogger "github.com/akash247777/Rental-Management-System/pkg/logger"
)

var (
	db *gorm.DB
)

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	// Set up GORM logger configuration
	var logLevel logger.LogLevel
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Error
	}

	// Override log level if explicitly set in config
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	}

	// Build DSN from config
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Configure GORM and open connection
	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surface unique violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool parameters
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log := applogger.GetLogger()

	// Run migrations
	start := time.Now()
	log.Info("Starting database migration...")

	if err := db.AutoMigrate(
		&model.User{},
		&model.RentalSite{},
	); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	log.Info("Database migration completed successfully",
		zap.Duration("duration", time.Since(start)))

	return nil
}

// GetDB returns a reference to the database instance
func GetDB() *gorm.DB {
	return db
}

// SeedDefaultUsers creates the two built-in admin accounts if they are
// missing. Safe to run on every startup.
func SeedDefaultUsers(log *zap.Logger) error {
	if db == nil {
		return errors.New("database connection not initialized")
	}

	defaults := []struct {
		Username string
		Password string
		Role     string
	}{
		{Username: "krishna", Password: "krishna@123", Role: "admin"},
		{Username: "kuber", Password: "kuber@123", Role: "admin"},
	}

	for _, d := range defaults {
		var count int64
		if err := db.Model(&model.User{}).Where("username = ?", d.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check default user %s: %w", d.Username, err)
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}

		user := model.User{
			Username: d.Username,
			Password: string(hashed),
			Role:     d.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create default user %s: %w", d.Username, err)
		}
		log.Info("Created default user", zap.String("username", d.Username))
	}

	return nil
}
