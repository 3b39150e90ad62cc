package model

import "time"

// RevokedToken menyimpan hash SHA-256 dari token yang sudah logout.
// Baris yang lewat ExpiresAt boleh dibersihkan.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time
	TokenHash string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"index;not null"`
}
