package db

import (
	"os"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

var DB *gorm.DB

func Init(log zerolog.Logger) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=jatinotes port=5432 sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Info().Msg("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.BookReview{},
		&models.Page{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed")

	seedCategories(log)
}

func seedCategories(log zerolog.Logger) {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Debug().Msg("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Slug: "catatan", Name: "Catatan", Description: "Daily notes and short thoughts"},
		{Slug: "teknologi", Name: "Teknologi", Description: "Software, tooling and the web"},
		{Slug: "buku", Name: "Buku", Description: "Reading notes and book reviews"},
		{Slug: "perjalanan", Name: "Perjalanan", Description: "Travel notes"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Error().Err(err).Str("category", category.Name).Msg("Failed to create category")
		}
	}
	log.Info().Msg("Initial categories created")
}
