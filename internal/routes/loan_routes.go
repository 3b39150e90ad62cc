package routes

import (
	"koperasi-backend/internal/handler"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLoanRoutes(app *fiber.App, db *gorm.DB) {
	loanRepo := repository.NewLoanRepository(db)
	userRepo := repository.NewUserRepository(db) // untuk notifikasi email

	hdl := handler.NewLoanHandler(loanRepo, userRepo)

	api := app.Group("/api/loans", middleware.Auth)

	// Endpoint untuk Anggota
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)

	// Endpoint untuk Admin (cek role ada di policy)
	api.Post("/:id/approve", hdl.Approve)
	api.Post("/:id/reject", hdl.Reject)
}
