package database

import (
	"fmt"
	"log"
	"os"

	"homefinder-api/internal/domain/billing"
	"homefinder-api/internal/domain/blog"
	"homefinder-api/internal/domain/favorites"
	"homefinder-api/internal/domain/notifications"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/reviews"
	"homefinder-api/internal/domain/users"
	"homefinder-api/internal/domain/visits"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&billing.Payment{},
		&billing.ProcessedEvent{},

		// marketplace
		&properties.Property{},
		&properties.PropertyImage{},
		&favorites.Favorite{},
		&reviews.Review{},
		&visits.VisitRequest{},
		&notifications.Notification{},

		// content
		&blog.Post{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
