package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleKaryawan = "karyawan" // anggota koperasi biasa
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:karyawan"` // admin atau karyawan
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	Loans   []Loan   `json:"loans,omitempty"`
	Savings []Saving `json:"savings,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
