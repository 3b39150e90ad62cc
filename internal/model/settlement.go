package model

import "gorm.io/gorm"

type Settlement struct {
	gorm.Model
	LoanID         uint   `json:"loan_id" gorm:"uniqueIndex"` // satu pelunasan per pinjaman
	SettlementDate string `json:"settlement_date"`            // format 2006-01-02
	Proof          string `json:"proof"`                      // path file bukti pembayaran
	Status         string `json:"status" gorm:"default:applied"`

	Loan *Loan `json:"loan,omitempty"`
}
