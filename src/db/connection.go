package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file; a missing file is fine when
	// the environment is set by the deployment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("Error connecting to database:", err)
		return nil, err
	}

	log.Println("FinDocs DB connected successfully!")

	return db, nil
}
