package main

import (
	"fmt"
	"log"

	"koperasi-backend/config"
	"koperasi-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	database.SeedAll(config.DB)

	fmt.Println("Seeding Selesai!")
}
