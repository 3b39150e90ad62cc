package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as boolean with fallback
func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai oleh usecase (sign) dan middleware (verify).
// Harus SAMA di kedua sisi, makanya dibaca dari satu tempat.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-koperasi"))
}

// UploadDir adalah folder penyimpanan file bukti pelunasan.
func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "./uploads")
}

// SettlementRequireApprovedLoan: kalau true, pelunasan hanya boleh
// diajukan untuk pinjaman yang statusnya approved.
func SettlementRequireApprovedLoan() bool {
	return GetEnvAsBool("SETTLEMENT_REQUIRE_APPROVED_LOAN", false)
}

// StrictStatusTransitions: kalau true, approve/reject hanya sah dari
// status applied (selain itu 409 Conflict).
func StrictStatusTransitions() bool {
	return GetEnvAsBool("STRICT_STATUS_TRANSITIONS", false)
}
