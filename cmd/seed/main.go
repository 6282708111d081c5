package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finstagram/backend/config"
	"github.com/finstagram/backend/internal/database"
	"github.com/finstagram/backend/internal/models"
)

// Seeds a handful of accounts for local frontend development. Safe to run
// repeatedly; existing usernames are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	password := "testpassword123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	seedUsers := []struct {
		username string
		fullName string
		bio      string
		location string
	}{
		{"johndoe", "John Doe", "Coffee, cameras and long walks.", "Austin, TX"},
		{"janesmith", "Jane Smith", "Travel photographer.", "Lisbon"},
		{"bobwilson", "Bob Wilson", "Mostly food pics.", "Chicago, IL"},
	}

	for _, su := range seedUsers {
		user := models.User{Username: su.username, PasswordHash: string(hashed)}
		if err := db.Create(&user).Error; err != nil {
			if err == gorm.ErrDuplicatedKey {
				fmt.Printf("User already exists, skipping: %s\n", su.username)
				continue
			}
			log.Fatalf("Failed to create user %s: %v", su.username, err)
		}

		profile := models.Profile{
			Username: su.username,
			FullName: su.fullName,
			Bio:      su.bio,
			Location: su.location,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create profile for %s: %v", su.username, err)
		}

		fmt.Printf("Created test user: %s (password: %s)\n", su.username, password)
	}

	fmt.Println("Seeding complete.")
}
