package routes

import (
	"koperasi-backend/internal/handler"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSavingRoutes(app *fiber.App, db *gorm.DB) {
	savingRepo := repository.NewSavingRepository(db)
	userRepo := repository.NewUserRepository(db)

	hdl := handler.NewSavingHandler(savingRepo, userRepo)

	api := app.Group("/api", middleware.Auth)

	api.Get("/savings", hdl.GetAll)
	api.Get("/savings/:id", hdl.GetByID)
	api.Get("/yearly-profit", hdl.YearlyProfit)

	// Tulis simpanan hanya untuk Admin
	admin := api.Group("/savings", middleware.Role(model.RoleAdmin))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
