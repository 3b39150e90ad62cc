package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"koperasi-backend/config"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrWrongPassword      = errors.New("password lama salah")
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
}

func NewAuthUsecase(users repository.UserRepository, tokens repository.TokenRepository) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan email
	user, err := u.users.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 3. Jika benar, buat Token JWT
	token, err := generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout mencatat hash token ke daftar revoked sampai token itu kadaluwarsa.
func (u *AuthUsecase) Logout(tokenString string, expiresAt time.Time) error {
	return u.tokens.Revoke(HashToken(tokenString), expiresAt)
}

func (u *AuthUsecase) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := u.users.FindByID(userID)
	if err != nil {
		return err
	}

	// Cek Password Lama
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	// Hash Password Baru
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	return u.users.Update(user)
}

// HashToken dipakai juga oleh auth middleware untuk cek revocation.
func HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}

// Helper function untuk membuat JWT
func generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
