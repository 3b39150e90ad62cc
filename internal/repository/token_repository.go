package repository

import (
	"time"

	"koperasi-backend/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Revoke(tokenHash string, expiresAt time.Time) error
	IsRevoked(tokenHash string) bool
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db}
}

func (r *tokenRepository) Revoke(tokenHash string, expiresAt time.Time) error {
	revoked := model.RevokedToken{TokenHash: tokenHash, ExpiresAt: expiresAt}
	// FirstOrCreate agar logout dua kali tidak error karena unique index
	return r.db.Where("token_hash = ?", tokenHash).FirstOrCreate(&revoked).Error
}

func (r *tokenRepository) IsRevoked(tokenHash string) bool {
	var count int64
	r.db.Model(&model.RevokedToken{}).Where("token_hash = ?", tokenHash).Count(&count)
	return count > 0
}
