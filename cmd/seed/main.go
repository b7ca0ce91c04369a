// Command seed imports a development dataset of tours and users.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"tours-api/internal/config"
	"tours-api/internal/database"
	"tours-api/internal/models"
	"tours-api/internal/repository"
	"tours-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	toursFile := flag.String("tours", "dev-data/tours.json", "path to the tours JSON file")
	wipe := flag.Bool("wipe", false, "drop existing tours and users before importing")
	flag.Parse()

	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *wipe {
		if _, err := mongoDB.Collection("tours").DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to wipe tours: %v", err)
		}
		if _, err := mongoDB.Collection("users").DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to wipe users: %v", err)
		}
		log.Println("Wiped existing data")
	}

	tourRepo := repository.NewTourRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	tours, err := loadTours(*toursFile)
	if err != nil {
		log.Fatalf("Failed to load tours: %v", err)
	}

	for i := range tours {
		if err := tourRepo.Create(ctx, &tours[i]); err != nil {
			log.Printf("Skipping tour %q: %v", tours[i].Name, err)
			continue
		}
	}
	log.Printf("Imported %d tours", len(tours))

	// Admin account for local development
	hashed, err := auth.HashPassword("test1234")
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Role:     models.RoleAdmin,
		Password: hashed,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("Skipping admin user: %v", err)
	} else {
		log.Println("Created admin user admin@example.com")
	}

	log.Println("Seed complete")
}

// loadTours reads the dev dataset from disk.
func loadTours(path string) ([]models.Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tours []models.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}
