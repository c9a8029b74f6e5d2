package main

import (
	"log"
	"os"

	"video-notetaking-be/internal/model"
	"video-notetaking-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the demo account the end-to-end flow logs in with.
const (
	demoEmail    = "demo@example.com"
	demoPassword = "123456"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo user...")

	var existing model.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		color.Yellow("User '%s' already exists, skipping...", demoEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	user := model.User{
		Email:        demoEmail,
		PasswordHash: string(hash),
	}

	if err := db.Create(&user).Error; err != nil {
		color.Red("Error creating user '%s': %v", demoEmail, err)
		os.Exit(1)
	}

	color.Green("Created demo user: %s (id: %s)", user.Email, user.Id)
}
