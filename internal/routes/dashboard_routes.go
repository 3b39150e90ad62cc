package routes

import (
	"koperasi-backend/internal/handler"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	savingRepo := repository.NewSavingRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)

	hdl := handler.NewDashboardHandler(userRepo, loanRepo, savingRepo, settlementRepo)

	api := app.Group("/api/dashboard", middleware.Auth)
	api.Get("/", hdl.GetSummary)
}
