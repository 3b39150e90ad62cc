package model

import "gorm.io/gorm"

const (
	SavingWajib = "wajib" // simpanan wajib (periodik)
	SavingPokok = "pokok" // simpanan pokok (sekali di awal)
)

type Saving struct {
	gorm.Model
	UserID uint    `json:"user_id"`
	Type   string  `json:"type"` // wajib atau pokok
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // format 2006-01-02

	User *User `json:"user,omitempty"`
}
