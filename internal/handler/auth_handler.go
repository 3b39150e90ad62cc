package handler

import (
	"errors"
	"time"

	"koperasi-backend/internal/repository"
	"koperasi-backend/internal/usecase"
	"koperasi-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth  *usecase.AuthUsecase
	users repository.UserRepository
}

func NewAuthHandler(auth *usecase.AuthUsecase, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau Password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)

	// exp dari claims dipakai supaya baris revoked bisa dibersihkan nanti
	expiresAt := time.Now().Add(time.Hour * 24)
	if exp, ok := c.Locals("token_exp").(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	if err := h.auth.Logout(tokenString, expiresAt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal logout"})
	}

	return c.JSON(fiber.Map{"message": "Logout berhasil"})
}

func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	caller := currentUser(c)

	user, err := h.users.FindByID(caller.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
	}

	return c.JSON(user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	caller := currentUser(c)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	if err := h.auth.ChangePassword(caller.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrWrongPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password lama salah"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}
