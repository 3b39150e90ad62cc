package middleware

import (
	"strings"

	"koperasi-backend/config"
	"koperasi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// DB diset dari main saat startup, dipakai untuk cek token yang sudah logout
var DB *gorm.DB

func Auth(c *fiber.Ctx) error {
	// 1. Ambil token dari Header Authorization
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
	}

	// Format header biasanya: "Bearer <token>"
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	// 2. Parse dan Validasi Token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return config.JWTSecret(), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
	}

	// 3. Tolak token yang sudah di-logout
	if DB != nil {
		var count int64
		DB.Table("revoked_tokens").Where("token_hash = ?", usecase.HashToken(tokenString)).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token sudah tidak berlaku"})
		}
	}

	// 4. Simpan data user (Claims) ke Context agar bisa dipakai di Handler
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("email", claims["email"])
	c.Locals("role", claims["role"])
	c.Locals("token", tokenString)
	c.Locals("token_exp", claims["exp"]) // dipakai handler logout

	return c.Next()
}
