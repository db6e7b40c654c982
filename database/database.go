package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vineetbagga004/Viral-Nation-Assessment/config"
	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
)

// Connect opens the Postgres connection and migrates the users and movies
// tables. TranslateError is on so a duplicate-key insert surfaces as
// gorm.ErrDuplicatedKey, which the user store maps to ErrEmailTaken.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection successfully opened.")

	if err := db.AutoMigrate(&models.User{}, &models.Movie{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrated successfully.")

	return db, nil
}
