package routes

import (
	"koperasi-backend/internal/handler"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/repository"
	"koperasi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	auth := usecase.NewAuthUsecase(userRepo, tokenRepo)
	hdl := handler.NewAuthHandler(auth, userRepo)

	// Login satu-satunya endpoint tanpa token
	app.Post("/api/login", hdl.Login)

	api := app.Group("/api", middleware.Auth)
	api.Post("/logout", hdl.Logout)
	api.Get("/user", hdl.GetUser)
	api.Post("/change-password", hdl.ChangePassword)
}
