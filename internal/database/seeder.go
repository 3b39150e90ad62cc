package database

import (
	"log"

	"koperasi-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password seed:", err)
	}

	users := []model.User{
		{
			Name:     "Admin",
			Email:    "admin@koperasi.com",
			Password: string(hashed),
			Role:     model.RoleAdmin,
			Phone:    "081234567890",
			Address:  "Jl. Admin No. 1",
		},
		{
			Name:     "Karyawan",
			Email:    "karyawan@koperasi.com",
			Password: string(hashed),
			Role:     model.RoleKaryawan,
			Phone:    "081234567891",
			Address:  "Jl. Karyawan No. 2",
		},
	}

	// FirstOrCreate agar seeder aman dijalankan berulang kali
	for _, u := range users {
		db.FirstOrCreate(&u, model.User{Email: u.Email})
	}
}
