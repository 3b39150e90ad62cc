package model

import "gorm.io/gorm"

const (
	StatusApplied  = "applied"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Loan struct {
	gorm.Model
	UserID          uint    `json:"user_id"`
	ApplicationDate string  `json:"application_date"` // format 2006-01-02
	Amount          float64 `json:"amount"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Status          string  `json:"status" gorm:"default:applied"`

	// Relasi untuk Preload data pemilik dan pelunasan
	User       *User       `json:"user,omitempty"`
	Settlement *Settlement `json:"settlement,omitempty"`
}
