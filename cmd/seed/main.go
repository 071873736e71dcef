package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/honestng/honest-backend/internal/auth"
	"github.com/honestng/honest-backend/internal/config"
	"github.com/honestng/honest-backend/internal/db"
	"github.com/honestng/honest-backend/internal/directory"
	"github.com/honestng/honest-backend/internal/seeds"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)
	auth.Init()
	directory.Init(cfg.ViewCooldown())

	if err := seeds.Run(db.DB); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding complete")
}
