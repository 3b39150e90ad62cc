package handler

import (
	"koperasi-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

// currentUser merekonstruksi user dari claims yang diset Auth middleware.
// Cukup untuk cek policy tanpa query ke database.
func currentUser(c *fiber.Ctx) *model.User {
	user := &model.User{}
	if id, ok := c.Locals("user_id").(float64); ok {
		user.ID = uint(id)
	}
	if email, ok := c.Locals("email").(string); ok {
		user.Email = email
	}
	if role, ok := c.Locals("role").(string); ok {
		user.Role = role
	}
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Unauthorized"})
}

func validationFailed(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Data tidak valid",
		"errors":  fields,
	})
}
