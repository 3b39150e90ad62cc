package main

import (
	"fmt"

	"koperasi-backend/config"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	middleware.DB = config.DB // dipakai middleware untuk cek token revoked
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend di port lain
	app.Use(logger.New()) // Agar log request muncul di terminal

	// Serve Static Files (bukti pelunasan bisa dibuka via /uploads/proofs/...)
	app.Static("/uploads", config.UploadDir())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupLoanRoutes(app, config.DB)
	routes.SetupSavingRoutes(app, config.DB)
	routes.SetupSettlementRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
