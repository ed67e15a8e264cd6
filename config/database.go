package config

import (
	"fmt"
	"os"

	"github.com/bit-festival/api-go/models"
	"github.com/bit-festival/api-go/utils/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Log.Fatal("Failed to connect to database: ", err)
	}

	if err := MigrateModels(db); err != nil {
		log.Log.Fatal("Failed to migrate models: ", err)
	}

	return db
}

// MigrateModels runs AutoMigrate for every model this service owns.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Activity{},
		&models.Like{},
		&models.Comment{},
	)
}
