package routes

import (
	"koperasi-backend/internal/handler"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettlementRoutes(app *fiber.App, db *gorm.DB) {
	settlementRepo := repository.NewSettlementRepository(db)
	loanRepo := repository.NewLoanRepository(db) // untuk cek pemilik pinjaman
	userRepo := repository.NewUserRepository(db)

	hdl := handler.NewSettlementHandler(settlementRepo, loanRepo, userRepo)

	api := app.Group("/api/settlements", middleware.Auth)

	// Anggota mengajukan pelunasan pinjamannya sendiri
	api.Post("/", hdl.Create)

	// Endpoint untuk Admin
	api.Get("/", middleware.Role(model.RoleAdmin), hdl.GetAll)
	api.Post("/:id/approve", middleware.Role(model.RoleAdmin), hdl.Approve)
	api.Post("/:id/reject", middleware.Role(model.RoleAdmin), hdl.Reject)
}
