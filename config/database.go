package config

import (
	"fmt"
	"strings"

	"popcornhour/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds the connection string for the configured driver. SQLite only
// enforces foreign keys per connection, so the flag goes into the DSN and every
// pooled connection gets it.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		if strings.Contains(c.DBName, "_foreign_keys=") || strings.Contains(c.DBName, "_fk=") {
			return c.DBName
		}
		sep := "?"
		if strings.Contains(c.DBName, "?") {
			sep = "&"
		}
		return c.DBName + sep + "_foreign_keys=on"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// InitDB opens the pooled database handle and migrates the schema.
func InitDB(c *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.DBDriver {
	case "postgres":
		dialector = postgres.Open(c.DSN())
	case "sqlite":
		dialector = sqlite.Open(c.DSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if c.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.DBMaxOpenConns)
	}
	if c.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.DBMaxIdleConns)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates all tables. Ratings and comments reference users and
// movies without ON DELETE actions, so the database refuses orphaning deletes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Rating{},
		&models.Comment{},
	)
}
